package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/script"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func typeLine(b *bubble, line string) tea.Cmd {
	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestBubble(t *testing.T) {
	Convey("Given a REPL over an int session", t, func() {
		viper.Set(key.REPLShowSuggestions, false)
		viper.Set(key.REPLPrompt, "> ")

		session, err := script.NewSession("int", false, 0)
		So(err, ShouldBeNil)

		b := newBubble(session)
		b.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

		Convey("Enter runs the typed line", func() {
			So(typeLine(b, "push 1 2 3; pop"), ShouldNotBeNil)
			So(session.Contents(), ShouldResemble, []string{"1", "2"})
			So(b.inputC.Value(), ShouldBeEmpty)
			So(b.lastError, ShouldBeNil)
			So(b.transcript, ShouldHaveLength, 2)
			So(b.transcript[1], ShouldEndWith, "3")
		})

		Convey("Empty pops are shown as none", func() {
			typeLine(b, "pop")
			So(b.transcript[1], ShouldContainSubstring, "none")
			So(b.lastError, ShouldBeNil)
		})

		Convey("The stack view lists the top first", func() {
			typeLine(b, "push 10 20")
			view := b.View()
			So(view, ShouldContainSubstring, "2 items")
			So(view, ShouldContainSubstring, "20")
			So(view, ShouldContainSubstring, "int stack")
		})

		Convey("Errors are shown and not remembered", func() {
			So(typeLine(b, "pusj 1"), ShouldBeNil)
			So(b.lastError, ShouldNotBeNil)
			So(b.View(), ShouldContainSubstring, "did you mean push?")
		})

		Convey("ctrl+z undoes the last line", func() {
			undo := func() string {
				_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
				So(cmd, ShouldNotBeNil)
				b.Update(cmd())
				return b.notifier.Current()
			}

			typeLine(b, "push 1")
			typeLine(b, "push 2")
			So(undo(), ShouldContainSubstring, "undone")
			So(session.Contents(), ShouldResemble, []string{"1"})

			undo()
			So(undo(), ShouldContainSubstring, "nothing to undo")
			So(session.Size(), ShouldEqual, 0)
			So(b.View(), ShouldContainSubstring, "nothing to undo")
		})

		Convey("tab accepts the current suggestion", func() {
			b.suggestion = mo.Some("push hello")
			b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.inputC.Value(), ShouldEqual, "push hello")
			So(b.suggestion.IsAbsent(), ShouldBeTrue)
		})

		Convey("esc quits", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, tea.Quit())
		})

		Convey("The transcript keeps only the newest lines", func() {
			for i := 0; i < transcriptLimit; i++ {
				typeLine(b, "size")
			}
			So(b.transcript, ShouldHaveLength, transcriptLimit)
		})
	})
}
