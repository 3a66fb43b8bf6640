package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/util"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	stackStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.ActiveBorderColor).
			Padding(0, 1)
	echoStyle = style.Fg(style.SecondaryColor)
	noneStyle = style.Faint
)

// stackLimit is the most elements the stack box shows before eliding the rest.
const stackLimit = 10

func (b *bubble) View() string {
	header := []string{
		style.Title("lifo") + " " + style.Faint(fmt.Sprintf("%s stack", b.session.Type())),
		"",
		b.viewStack(),
		"",
	}

	footer := []string{"", b.viewInput()}
	if b.lastError != nil {
		footer = append(footer, "", style.Fg(color.Red)(wrap.String(icon.Get(icon.Fail)+" "+b.lastError.Error(), max(b.width, 20))))
	}
	footer = append(footer, "", b.notifier.View(b.helpC.View(b.keymap), style.Faint))

	used := lipgloss.Height(strings.Join(header, "\n")) + lipgloss.Height(strings.Join(footer, "\n"))
	lines := append(header, b.viewTranscript(b.height-used)...)
	lines = append(lines, footer...)

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

// viewStack renders the elements top first inside a bordered box.
func (b *bubble) viewStack() string {
	contents := b.session.Contents()
	title := style.Bold(fmt.Sprintf("Stack %s", style.Faint(util.Quantify(len(contents), "item", "items"))))

	if len(contents) == 0 {
		return stackStyle.Render(title + "\n" + noneStyle("empty"))
	}

	width := uint(max(b.width-4, 10))
	slices.Reverse(contents)

	rows := make([]string, 0, stackLimit+2)
	rows = append(rows, title)
	for i, item := range contents {
		if i == stackLimit {
			rows = append(rows, style.Faint(fmt.Sprintf("… %d more", len(contents)-stackLimit)))
			break
		}

		marker := "  "
		if i == 0 {
			marker = style.Fg(style.AccentColor)("▸ ")
		}
		rows = append(rows, marker+truncate.StringWithTail(item, width-2, "…"))
	}

	return stackStyle.Render(strings.Join(rows, "\n"))
}

// viewTranscript returns the newest transcript lines that fit in height.
// A non-positive height means the terminal size is unknown and everything is shown.
func (b *bubble) viewTranscript(height int) []string {
	if height <= 0 || height >= len(b.transcript) {
		return b.transcript
	}
	return b.transcript[len(b.transcript)-height:]
}

func (b *bubble) viewInput() string {
	view := b.inputC.View()
	if suggestion, ok := b.suggestion.Get(); ok {
		view += "\n" + style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Mark), suggestion))
	}
	return view
}
