// Package tui is the interactive watch screen.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/open"
	"github.com/miru-cli/miru/player"
	"github.com/miru-cli/miru/storage"
	"github.com/miru-cli/miru/watch"
)

// Options configures Run.
type Options struct {
	Session *watch.Session
	// Store holds the preferences the session writes to.
	Store  storage.Store
	Player player.Player
	// Open shows a page in the browser. Defaults to open.Start.
	Open func(string) error
}

// Run shows the watch screen until the user quits or ctx is done.
func Run(ctx context.Context, options *Options) error {
	if options.Player == nil {
		p, err := player.Default()
		if err != nil {
			return err
		}
		options.Player = p
	}

	if options.Open == nil {
		options.Open = open.Start
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newModel(ctx, options), tea.WithAltScreen(), tea.WithContext(ctx))

	remove := options.Session.OnChange(func(watch.State) {
		program.Send(changedMsg{})
	})
	defer remove()
	defer options.Session.Unmount()

	_, err := program.Run()

	if closeErr := options.Player.Close(); closeErr != nil {
		log.Warnf("close player: %s", closeErr)
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
