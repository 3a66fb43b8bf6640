package config

import "github.com/lifo-cli/lifo/key"

var fields = []Field{
	{Key: key.ScriptType, Value: "string", Description: "Element type of scripted stacks", Allowed: []string{"string", "int", "float", "bool"}},
	{Key: key.ScriptEcho, Value: false, Description: "Echo each statement before its result in text output"},
	{Key: key.ScriptStrict, Value: false, Description: "Treat pop or peek on an empty stack as an error"},
	{Key: key.DumpMaxWidth, Value: 80, Description: "Maximum width of a rendered stack dump, 0 disables truncation"},

	{Key: key.REPLPrompt, Value: "> ", Description: "Prompt string of the interactive session"},
	{Key: key.REPLShowSuggestions, Value: true, Description: "Suggest previously entered statements"},
	{Key: key.REPLHistorySize, Value: 100, Description: "Number of statements remembered for suggestions"},

	{Key: key.LuaPreloadLibs, Value: true, Description: "Preload the extended Lua standard library (strings, json, regexp...)"},

	{Key: key.IconsVariant, Value: "plain", Description: "Icons variant, nerd requires a nerd font", Allowed: []string{"emoji", "kaomoji", "plain", "squares", "nerd"}},

	{Key: key.LogsWrite, Value: false, Description: "Write logs"},
	{Key: key.LogsLevel, Value: "info", Description: "Log level, from less to most verbose", Allowed: []string{"panic", "fatal", "error", "warn", "info", "debug", "trace"}},
	{Key: key.LogsJson, Value: false, Description: "Use json format for logs"},

	{Key: key.CliColored, Value: true, Description: "Enable colored CLI output"},
	{Key: key.CliVersionCheck, Value: false, Description: "Check for a newer release when printing help or version"},
}

// Default maps every configuration key to its field.
var Default = make(map[string]Field, len(fields))

// EnvExposed lists the keys bound to environment variables, in declaration order.
var EnvExposed = make([]string, 0, len(fields))

func init() {
	for _, f := range fields {
		if _, exists := Default[f.Key]; exists {
			panic("duplicate config key: " + f.Key)
		}
		Default[f.Key] = f
		EnvExposed = append(EnvExposed, f.Key)
	}
}
