// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Script Runner - these keys govern how scripted stack sessions are parsed and reported.
const (
	ScriptType   = "script.type"
	ScriptEcho   = "script.echo"
	ScriptStrict = "script.strict"
)

// Rendering - these keys constrain how stack contents are printed.
const (
	DumpMaxWidth = "dump.max_width"
)

// Interactive REPL - these keys configure the Bubble Tea session.
const (
	REPLPrompt          = "repl.prompt"
	REPLShowSuggestions = "repl.show_suggestions"
	REPLHistorySize     = "repl.history_size"
)

// Lua Scripting - these keys configure the embedded interpreter.
const (
	LuaPreloadLibs = "lua.preload_libs"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
