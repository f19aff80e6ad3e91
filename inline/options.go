package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/storage"
	"github.com/miru-cli/miru/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// EpisodeSelector picks the episode to resolve from the fetched list.
type EpisodeSelector func([]api.Episode) (api.Episode, bool)

type Options struct {
	Out     io.Writer
	Route   watch.Route
	Fetcher watch.Fetcher
	Store   storage.Store

	Json        bool
	Episodes    bool
	SaveHistory bool

	SourceType mo.Option[prefs.SourceType]
	Language   mo.Option[prefs.Language]
	Selector   mo.Option[EpisodeSelector]
}

// ParseEpisodeSelector accepts
//
//	first, last    - ends of the list
//	[number]       - episode number as announced by the API
//	@[substring]@  - first episode whose title contains substring
func ParseEpisodeSelector(description string) (EpisodeSelector, error) {
	switch description {
	case "first":
		return func(episodes []api.Episode) (api.Episode, bool) {
			if len(episodes) == 0 {
				return api.Episode{}, false
			}
			return episodes[0], true
		}, nil
	case "last":
		return func(episodes []api.Episode) (api.Episode, bool) {
			if len(episodes) == 0 {
				return api.Episode{}, false
			}
			return episodes[len(episodes)-1], true
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []api.Episode) (api.Episode, bool) {
			return lo.Find(episodes, func(e api.Episode) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			})
		}, nil
	}

	if number, err := strconv.Atoi(description); err == nil {
		return func(episodes []api.Episode) (api.Episode, bool) {
			return lo.Find(episodes, func(e api.Episode) bool {
				return e.Number == number
			})
		}, nil
	}

	return nil, fmt.Errorf("invalid episode selector: %s", description)
}
