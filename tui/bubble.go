package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/style"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// transcriptLimit bounds how many lines of past results are kept.
const transcriptLimit = 200

// bubble is the REPL model: an input line over a session and the transcript of its results.
type bubble struct {
	session script.Session
	keymap  *keymap

	inputC textinput.Model
	helpC  help.Model

	// statements counts executed lines so errors can name them.
	statements int
	transcript []string
	suggestion mo.Option[string]
	notifier   *ui.Model
	lastError  error

	width, height int
}

func newBubble(session script.Session) *bubble {
	inputC := textinput.New()
	inputC.Prompt = viper.GetString(key.REPLPrompt)
	inputC.Placeholder = "push 1 2 3; pop; dump"
	inputC.PromptStyle = inputC.PromptStyle.Foreground(style.AccentColor)
	inputC.Focus()

	return &bubble{
		session:    session,
		keymap:     newKeymap(),
		inputC:     inputC,
		helpC:      help.New(),
		suggestion: mo.None[string](),
		notifier:   &ui.Model{},
	}
}

// resize propagates terminal dimension changes to the child components.
func (b *bubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y
	b.inputC.Width = b.width - len(b.inputC.Prompt) - 1
	b.helpC.Width = b.width
}

// record appends lines to the transcript, dropping the oldest past transcriptLimit.
func (b *bubble) record(lines ...string) {
	b.transcript = append(b.transcript, lines...)
	if over := len(b.transcript) - transcriptLimit; over > 0 {
		b.transcript = b.transcript[over:]
	}
}
