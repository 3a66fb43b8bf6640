// Package mini implements a lightweight, menu driven session over a single stack.
package mini

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/lifo-cli/lifo/history"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/script"
	"github.com/lifo-cli/lifo/stack"
	"github.com/spf13/viper"
)

// Options configures a menu session.
type Options struct {
	// Type names the element codec, see script.Types.
	Type   string
	Strict bool
	// Continue restores the stack saved by the previous session of the same type.
	Continue bool
}

type mini struct {
	session script.Session
	prompt  prompter
	out     io.Writer

	state         state
	statesHistory *stack.Stack[state]

	// statements numbers executed instructions for error messages.
	statements int
}

func newMini(session script.Session, prompt prompter, out io.Writer) *mini {
	return &mini{
		session:       session,
		prompt:        prompt,
		out:           out,
		state:         mainMenuState,
		statesHistory: stack.New[state](),
	}
}

// previousState returns to the menu that led to the current one, or stays put at the top.
func (m *mini) previousState() {
	if s, ok := m.statesHistory.Pop().Get(); ok {
		m.state = s
	}
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.state = s
}

// Run starts the menu loop on stdout. It returns when the user quits or interrupts,
// saving the final stack for a later session.
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

	if err := newMini(session, surveyPrompter{}, os.Stdout).loop(); err != nil {
		return err
	}
	return history.Save(session)
}

func (m *mini) loop() error {
	title(m.out, "Stack Menu")
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case mainMenuState:
		return m.handleMainMenuState()
	case inspectMenuState:
		return m.handleInspectMenuState()
	case pushState:
		return m.handlePushState()
	case clearState:
		return m.handleClearState()
	}

	return nil
}
