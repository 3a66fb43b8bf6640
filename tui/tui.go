// Package tui provides the interactive stack REPL.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/history"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration for the REPL.
type Options struct {
	// Type names the element codec, see script.Types.
	Type   string
	Strict bool
	// Continue restores the stack saved by the previous session of the same type.
	Continue bool
}

// Run initializes and executes the REPL application loop.
// The final stack is saved so that a later session can continue from it.
func Run(options *Options) error {
	session, err := script.NewSession(options.Type, options.Strict, viper.GetUint(key.DumpMaxWidth))
	if err != nil {
		return err
	}

	if options.Continue {
		restored, err := history.Restore(session)
		if err != nil {
			return err
		}
		if restored {
			log.Infof("continuing %s stack with %d items", session.Type(), session.Size())
		}
	}

	if _, err = tea.NewProgram(newBubble(session), tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	return history.Save(session)
}
