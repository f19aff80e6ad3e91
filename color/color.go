// Package color holds the terminal colors used by the CLI and the TUI.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI index or hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Accents shared by the watch screen.
var (
	Accent  = New("#cba6f7")
	Surface = New("#313244")
	Overlay = New("#6c7086")
	Text    = New("#cdd6f4")
	Peach   = New("#fab387")
	Sky     = New("#89dceb")
)

// Badge colors by preference value.
var (
	Sub     = Sky
	Dub     = Peach
	Watched = Green
	Airing  = Yellow
)
