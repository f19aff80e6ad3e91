// Package inline resolves one episode without the interactive screen and prints the result.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/watch"
)

var (
	ErrNoEpisodes  = errors.New("no episodes found")
	ErrNoSelection = errors.New("no episode matches the selector")
	ErrNoServer    = errors.New("no embedded server available")
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	sessionOptions := watch.Options{SaveHistory: options.SaveHistory}
	if selector, ok := options.Selector.Get(); ok {
		sessionOptions.Pick = func(episodes []api.Episode) (string, error) {
			episode, found := selector(episodes)
			if !found {
				return "", ErrNoSelection
			}

			log.Infof("selected episode %d (%s)", episode.Number, episode.ID)
			return episode.ID, nil
		}
	}

	session := watch.NewSession(options.Route, options.Fetcher, options.Store, sessionOptions)
	defer session.Unmount()

	// both only store the preference until an episode is loaded
	if st, ok := options.SourceType.Get(); ok {
		if err := session.ChangeSourceType(ctx, st); err != nil {
			return err
		}
	}

	if language, ok := options.Language.Get(); ok {
		if err := session.ChangeLanguage(language); err != nil {
			return err
		}
	}

	if err := session.Mount(ctx); err != nil {
		return err
	}

	state := session.State()

	if options.Json {
		return writeJson(options.Out, newOutput(state, options.Episodes))
	}

	switch {
	case state.NoEpisodes:
		return ErrNoEpisodes
	case state.EmbeddedURL == "":
		return ErrNoServer
	}

	_, err := fmt.Fprintln(options.Out, state.EmbeddedURL)
	return err
}
