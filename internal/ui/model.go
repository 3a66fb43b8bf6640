// Package ui provides state management and rendering for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Model holds the notification currently shown, if any.
type Model struct {
	notification string
	// id identifies the latest notification so that stale clear ticks are ignored.
	id int
}

// NotificationMsg asks the model to show a notification.
type NotificationMsg string

// ClearNotificationMsg resets the notification it was scheduled for.
type ClearNotificationMsg struct {
	id int
}

// Notify returns a tea.Cmd that shows msg.
func Notify(msg string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(msg)
	}
}

func clearAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearNotificationMsg{id: id}
	})
}

// Update processes notification messages and schedules their removal.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.id++
		m.notification = string(msg)
		return clearAfter(m.id, NotificationLifetime)
	case ClearNotificationMsg:
		if msg.id == m.id {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the notification being shown, or an empty string.
func (m *Model) Current() string {
	return m.notification
}

// View appends the current notification to the last line of content.
func (m *Model) View(content string, render func(string) string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + render(m.notification)
	return strings.Join(lines, "\n")
}
