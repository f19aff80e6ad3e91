// Package watch drives the watch screen: it resolves the episode to show,
// loads what is needed to play it and applies the user's choices.
package watch

import (
	"time"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	"github.com/samber/mo"
)

// Route identifies what to show. AnimeTitle is for display only.
type Route struct {
	AnimeID    string `json:"animeId"`
	AnimeTitle string `json:"animeTitle,omitempty"`
	EpisodeID  string `json:"episodeId,omitempty"`
}

type Phase int

const (
	Idle Phase = iota
	LoadingTitle
	ResolvingEpisode
	LoadingEpisode
	LoadingSources
	Ready
	NoEpisodes
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case LoadingTitle:
		return "loading title"
	case ResolvingEpisode:
		return "resolving episode"
	case LoadingEpisode:
		return "loading episode"
	case LoadingSources:
		return "loading sources"
	case Ready:
		return "ready"
	case NoEpisodes:
		return "no episodes"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Placeholder is the current episode until a real one is resolved.
var Placeholder = api.Episode{ID: "0", Number: 1}

// State is a snapshot of the watch screen.
// Slices are shared between snapshots and must not be modified.
type State struct {
	Route      Route                `json:"route"`
	Phase      Phase                `json:"phase"`
	Generation uint64               `json:"-"`
	Loading    bool                 `json:"loading"`
	Info       *api.AnimeInfo       `json:"info,omitempty"`
	Episodes   []api.Episode        `json:"episodes"`
	Current    api.Episode          `json:"current"`
	Servers    []api.EmbeddedServer `json:"servers,omitempty"`

	EmbeddedURL     string           `json:"embeddedUrl"`
	SourceType      prefs.SourceType `json:"sourceType"`
	Language        prefs.Language   `json:"language"`
	LanguageChanged bool             `json:"languageChanged"`
	NoEpisodes      bool             `json:"noEpisodes"`
	PlayerWidth     int              `json:"-"`

	// phase to return to when the running load fails
	settled Phase
}

// CurrentIndex is the position of the current episode in the list, or -1.
func (s State) CurrentIndex() int {
	for i, ep := range s.Episodes {
		if ep.ID == s.Current.ID {
			return i
		}
	}
	return -1
}

func (s State) HasNext() bool {
	i := s.CurrentIndex()
	return i >= 0 && i < len(s.Episodes)-1
}

func (s State) HasPrevious() bool {
	return s.CurrentIndex() > 0
}

// Airing describes an upcoming broadcast.
type Airing struct {
	Episode   int
	At        time.Time
	Remaining time.Duration
}

// NextAiring reports the next broadcast when the metadata announces one later than now.
func (s State) NextAiring(now time.Time) mo.Option[Airing] {
	if s.Info == nil || s.Info.NextAiringEpisode == nil {
		return mo.None[Airing]()
	}

	next := s.Info.NextAiringEpisode
	at := time.UnixMilli(next.AiringTime * 1000)
	if !at.After(now) {
		return mo.None[Airing]()
	}

	return mo.Some(Airing{Episode: next.Episode, At: at, Remaining: at.Sub(now)})
}
