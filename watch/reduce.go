package watch

import (
	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
)

// Event is a transition input of Reduce.
type Event interface {
	event()
}

// Requests carry a generation that only moves forward. Results carry the
// generation of their request and are dropped once a newer one was made.
type (
	TitleRequested struct{ Generation uint64 }
	TitleLoaded    struct {
		Generation uint64
		Info       *api.AnimeInfo
		Episodes   []api.Episode
	}
	EpisodeRequested struct {
		Generation uint64
		EpisodeID  string
	}
	EpisodeResolved struct {
		Generation uint64
		Episode    api.Episode
	}
	SourcesRequested struct{ Generation uint64 }
	SourcesLoaded    struct {
		Generation uint64
		Servers    []api.EmbeddedServer
		URL        string
	}
	LoadFailed struct {
		Generation uint64
		Err        error
	}
	LanguageSet   struct{ Language prefs.Language }
	SourceTypeSet struct{ SourceType prefs.SourceType }
	Resized       struct{ Width int }
)

func (TitleRequested) event()   {}
func (TitleLoaded) event()      {}
func (EpisodeRequested) event() {}
func (EpisodeResolved) event()  {}
func (SourcesRequested) event() {}
func (SourcesLoaded) event()    {}
func (LoadFailed) event()       {}
func (LanguageSet) event()      {}
func (SourceTypeSet) event()    {}
func (Resized) event()          {}

// Reduce returns the state following e.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case TitleRequested:
		if e.Generation < s.Generation {
			return s
		}
		s = s.begin(e.Generation, LoadingTitle)

	case TitleLoaded:
		if e.Generation != s.Generation {
			return s
		}
		s.Info = e.Info
		s.Episodes = e.Episodes
		if len(e.Episodes) == 0 {
			s.Phase = NoEpisodes
			s.NoEpisodes = true
			s.Loading = false
			return s
		}
		s.Phase = ResolvingEpisode
		s.NoEpisodes = false

	case EpisodeRequested:
		if e.Generation < s.Generation {
			return s
		}
		s = s.begin(e.Generation, LoadingEpisode)

	case EpisodeResolved:
		if e.Generation != s.Generation {
			return s
		}
		s.Current = e.Episode
		s.Phase = LoadingSources

	case SourcesRequested:
		if e.Generation < s.Generation {
			return s
		}
		s = s.begin(e.Generation, LoadingSources)

	case SourcesLoaded:
		if e.Generation != s.Generation {
			return s
		}
		s.Servers = e.Servers
		if e.URL != "" {
			s.EmbeddedURL = e.URL
		}
		s.Phase = Ready
		s.Loading = false

	case LoadFailed:
		if e.Generation != s.Generation {
			return s
		}
		s.Phase = s.settled
		s.Loading = false

	case LanguageSet:
		s.Language = e.Language
		s.LanguageChanged = true

	case SourceTypeSet:
		s.SourceType = e.SourceType

	case Resized:
		s.PlayerWidth = e.Width
	}

	return s
}

// begin enters a loading phase, remembering the last settled one when no
// load is already running.
func (s State) begin(generation uint64, phase Phase) State {
	if !s.Loading {
		s.settled = s.Phase
	}
	s.Generation = generation
	s.Phase = phase
	s.Loading = true
	return s
}
