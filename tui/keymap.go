package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/style"
)

// keymap defines the keyboard interactions available in the REPL.
type keymap struct {
	quit,
	confirm,
	acceptSuggestion,
	undo,
	clearInput,
	showHelp key.Binding

	full bool
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+d"),
			key.WithHelp("esc", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Purple)("enter"), style.Fg(color.Purple)("run")),
		),
		acceptSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		undo: key.NewBinding(
			key.WithKeys("ctrl+z"),
			key.WithHelp("ctrl+z", "undo"),
		),
		clearInput: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
	}
}

func (k *keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.acceptSuggestion, k.undo, k.quit, k.showHelp}
}

func (k *keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.confirm, k.acceptSuggestion},
		{k.undo, k.clearInput},
		{k.showHelp, k.quit},
	}
}
