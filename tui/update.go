package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/internal/ui"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/query"
	"github.com/lifo-cli/lifo/script"
	"github.com/samber/mo"
)

func (b *bubble) Init() tea.Cmd {
	return textinput.Blink
}

func (b *bubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.undo):
			return b, b.undo()
		case bubblesKey.Matches(msg, b.keymap.clearInput):
			b.inputC.SetValue("")
			b.suggestion = mo.None[string]()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion) && b.suggestion.IsPresent():
			b.inputC.SetValue(b.suggestion.MustGet())
			b.inputC.SetCursor(len(b.inputC.Value()))
			b.suggestion = mo.None[string]()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm) && b.inputC.Value() != "":
			line := b.inputC.Value()
			b.inputC.SetValue("")
			b.suggestion = mo.None[string]()
			return b, b.exec(line)
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)
	b.updateSuggestion()
	return b, cmd
}

// exec runs line through the session and records it for later suggestions.
func (b *bubble) exec(line string) tea.Cmd {
	b.statements++
	b.record(echoStyle(b.inputC.Prompt + line))

	steps, err := b.session.ExecLine(line, b.statements)
	for _, step := range steps {
		if step.Op.Produces() {
			b.record(resultLine(step))
		}
	}

	b.lastError = err
	if err != nil {
		log.WithField("line", b.statements).Warn(err)
		return nil
	}

	return remember(line)
}

func (b *bubble) undo() tea.Cmd {
	if b.session.Undo() {
		b.lastError = nil
		return ui.Notify(fmt.Sprintf("%s undone", icon.Get(icon.Success)))
	}
	return ui.Notify(fmt.Sprintf("%s nothing to undo", icon.Get(icon.Empty)))
}

func (b *bubble) updateSuggestion() {
	if b.inputC.Value() == "" {
		b.suggestion = mo.None[string]()
		return
	}
	b.suggestion = query.Suggest(b.inputC.Value())
}

func remember(line string) tea.Cmd {
	return func() tea.Msg {
		if err := query.Remember(line); err != nil {
			log.Warnf("remember statement: %s", err)
		}
		return nil
	}
}

func resultLine(step script.Step) string {
	if result, ok := step.Result.Get(); ok {
		return fmt.Sprintf("%s %s", opIcon(step.Op), result)
	}
	return fmt.Sprintf("%s %s", icon.Get(icon.Empty), noneStyle("none"))
}

func opIcon(op script.Op) string {
	switch op {
	case script.OpPop:
		return icon.Get(icon.Pop)
	case script.OpPeek:
		return icon.Get(icon.Peek)
	default:
		return icon.Get(icon.Mark)
	}
}
