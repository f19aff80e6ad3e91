package watch

import (
	"errors"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	"github.com/samber/lo"
)

// ErrEpisodeNotFound is returned when the requested episode is not in the list.
var ErrEpisodeNotFound = errors.New("episode not found")

// FindEpisode looks id up in episodes.
func FindEpisode(episodes []api.Episode, id string) (api.Episode, error) {
	ep, ok := lo.Find(episodes, func(e api.Episode) bool { return e.ID == id })
	if !ok {
		return api.Episode{}, ErrEpisodeNotFound
	}
	return ep, nil
}

// Preferred server names by source type.
const (
	ServerVidstreaming = "Vidstreaming"
	ServerGogo         = "Gogo server"
)

// SelectServer picks the server matching the source type, else the first one.
// ok is false for an empty list.
func SelectServer(servers []api.EmbeddedServer, st prefs.SourceType) (server api.EmbeddedServer, ok bool) {
	if len(servers) == 0 {
		return api.EmbeddedServer{}, false
	}

	name := ServerVidstreaming
	if st == prefs.SourceGogo {
		name = ServerGogo
	}

	if s, found := lo.Find(servers, func(s api.EmbeddedServer) bool { return s.Name == name }); found {
		return s, true
	}

	return servers[0], true
}
