// Package color names the terminal colors used across lifo output.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex code as a lipgloss color.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI palette indexes. They follow the user's terminal theme.
const (
	Red      lipgloss.Color = "1"
	Green    lipgloss.Color = "2"
	Yellow   lipgloss.Color = "3"
	Blue     lipgloss.Color = "4"
	Purple   lipgloss.Color = "5"
	HiPurple lipgloss.Color = "13"
)
