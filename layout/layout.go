// Package layout splits the terminal between the player pane and the episode list.
package layout

import (
	"github.com/miru-cli/miru/key"
	"github.com/spf13/viper"
)

// Rules decide when panes stack and how wide the list gets.
type Rules struct {
	// StackBelow is the terminal width under which panes are stacked.
	StackBelow int
	// SidebarWidth is the list width in side-by-side mode.
	SidebarWidth int
	// Gap separates the panes side by side.
	Gap int
}

// DefaultRules reads the tui.* keys.
func DefaultRules() Rules {
	return Rules{
		StackBelow:   viper.GetInt(key.TUIStackBelow),
		SidebarWidth: viper.GetInt(key.TUISidebarWidth),
		Gap:          1,
	}
}

// Layout is the measured split.
type Layout struct {
	Stacked     bool
	PlayerWidth int
	ListWidth   int
}

// Measure splits a terminal of the given width.
// Stacked panes both take the full width. Side by side the list keeps its
// width unless that would leave the player narrower than the list.
func (r Rules) Measure(width int) Layout {
	if width <= 0 {
		return Layout{Stacked: true}
	}

	if width < r.StackBelow || r.SidebarWidth <= 0 {
		return Layout{Stacked: true, PlayerWidth: width, ListWidth: width}
	}

	list := r.SidebarWidth
	if half := (width - r.Gap) / 2; list > half {
		list = half
	}

	return Layout{
		PlayerWidth: width - r.Gap - list,
		ListWidth:   list,
	}
}
