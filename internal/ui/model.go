// Package ui holds the short-lived notification line shown under the watch screen.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/miru-cli/miru/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 3 * time.Second

// Model is the notification state. The zero value shows nothing.
type Model struct {
	notification string
	seq          int
}

// NotifyMsg replaces the current notification.
type NotifyMsg string

// ClearNotificationMsg hides the notification it was scheduled for.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that flashes text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg(text)
	}
}

func clearAfter(seq int) tea.Cmd {
	return tea.Tick(Lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Current is the visible notification, empty when there is none.
func (m *Model) Current() string {
	return m.notification
}

// Update handles NotifyMsg and ClearNotificationMsg and ignores everything else.
// A clear scheduled by an older notification leaves a newer one in place.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotifyMsg:
		m.seq++
		m.notification = string(msg)
		return clearAfter(m.seq)
	case ClearNotificationMsg:
		if msg.seq == m.seq {
			m.notification = ""
		}
	}

	return nil
}

// View appends the notification to the last line of main.
func (m *Model) View(main string) string {
	if m.notification == "" {
		return main
	}

	lines := strings.Split(main, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
