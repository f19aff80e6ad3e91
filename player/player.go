// Package player hands episodes to an external player.
package player

import (
	"fmt"
	"strings"

	"github.com/miru-cli/miru/key"
	"github.com/spf13/viper"
)

// Media is what gets played.
type Media struct {
	URL   string
	Title string
}

// Player starts playback and reports when it ends.
type Player interface {
	Play(media Media) error
	// Wait is closed when playback ends. It is nil for players that cannot tell.
	Wait() <-chan struct{}
	Close() error
}

// Available lists the accepted values of player.default.
func Available() []string {
	return []string{"mpv", "browser"}
}

// New returns the player named name.
func New(name string) (Player, error) {
	switch strings.ToLower(name) {
	case "mpv":
		return NewMPV(), nil
	case "browser":
		return NewBrowser(), nil
	default:
		return nil, fmt.Errorf("unknown player %q, expected one of: %s", name, strings.Join(Available(), ", "))
	}
}

// Default returns the player configured by player.default.
func Default() (Player, error) {
	return New(viper.GetString(key.Player))
}
