// Package prefs is the typed view of the local store. Keys are built here
// and nowhere else, namespaced by title id.
package prefs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/storage"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// SourceType selects the family of embedded servers to prefer.
type SourceType string

const (
	SourceDefault SourceType = "default"
	SourceGogo    SourceType = "gogo"
)

// Language selects subtitled or dubbed episodes.
type Language string

const (
	LanguageSub Language = "sub"
	LanguageDub Language = "dub"
)

// SourceTypes lists the accepted source types.
var SourceTypes = []SourceType{SourceDefault, SourceGogo}

// Languages lists the accepted languages.
var Languages = []Language{LanguageSub, LanguageDub}

// ParseSourceType accepts any casing.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(strings.ToLower(s))
	if !lo.Contains(SourceTypes, st) {
		return "", fmt.Errorf("unknown source type %q, expected one of: default, gogo", s)
	}
	return st, nil
}

// ParseLanguage accepts any casing.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(s))
	if !lo.Contains(Languages, l) {
		return "", fmt.Errorf("unknown language %q, expected one of: sub, dub", s)
	}
	return l, nil
}

// Toggle returns the other source type.
func (s SourceType) Toggle() SourceType {
	if s == SourceGogo {
		return SourceDefault
	}
	return SourceGogo
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageDub {
		return LanguageSub
	}
	return LanguageDub
}

const (
	lastWatchedPrefix     = "last-watched-"
	watchedEpisodesPrefix = "watched-episodes-"
	lastAnimeVisitedKey   = "last-anime-visited"
)

func sourceKey(animeID string) string   { return "source-[" + animeID + "]" }
func languageKey(animeID string) string { return "subOrDub-[" + animeID + "]" }

// Title holds the preferences and history of one anime.
type Title struct {
	store storage.Store
	id    string
}

// ForTitle scopes store to animeID.
func ForTitle(store storage.Store, animeID string) *Title {
	return &Title{store: store, id: animeID}
}

// ID returns the title this repository is scoped to.
func (t *Title) ID() string {
	return t.id
}

// SourceType returns the stored source type, falling back to watch.default_source.
// Unrecognized stored values are treated as the default source.
func (t *Title) SourceType() (SourceType, error) {
	v, ok, err := t.store.Get(sourceKey(t.id))
	if err != nil {
		return "", err
	}

	if !ok || v == "" {
		v = viper.GetString(key.WatchDefaultSource)
	}

	st, err := ParseSourceType(v)
	if err != nil {
		return SourceDefault, nil
	}
	return st, nil
}

func (t *Title) SetSourceType(st SourceType) error {
	return t.store.Set(sourceKey(t.id), string(st))
}

// Language returns the stored language, falling back to watch.default_language.
func (t *Title) Language() (Language, error) {
	v, ok, err := t.store.Get(languageKey(t.id))
	if err != nil {
		return "", err
	}

	if !ok || v == "" {
		v = viper.GetString(key.WatchDefaultLanguage)
	}

	l, err := ParseLanguage(v)
	if err != nil {
		return LanguageSub, nil
	}
	return l, nil
}

func (t *Title) SetLanguage(l Language) error {
	return t.store.Set(languageKey(t.id), string(l))
}

// Watched returns the episodes opened so far, oldest first.
func (t *Title) Watched() ([]api.Episode, error) {
	v, ok, err := t.store.Get(watchedEpisodesPrefix + t.id)
	if err != nil {
		return nil, err
	}

	if !ok || v == "" {
		return nil, nil
	}

	var episodes []api.Episode
	if err := json.Unmarshal([]byte(v), &episodes); err != nil {
		return nil, fmt.Errorf("decode watched episodes of %s: %w", t.id, err)
	}

	return episodes, nil
}

// MarkWatched appends episode to the watched set unless an episode with
// the same id is already there. It reports whether the set changed.
func (t *Title) MarkWatched(episode api.Episode) (bool, error) {
	episodes, err := t.Watched()
	if err != nil {
		return false, err
	}

	if lo.ContainsBy(episodes, func(e api.Episode) bool { return e.ID == episode.ID }) {
		return false, nil
	}

	data, err := json.Marshal(append(episodes, episode))
	if err != nil {
		return false, err
	}

	if err := t.store.Set(watchedEpisodesPrefix+t.id, string(data)); err != nil {
		return false, err
	}

	return true, nil
}

// IsWatched reports whether episodeID is in the watched set.
func (t *Title) IsWatched(episodeID string) (bool, error) {
	episodes, err := t.Watched()
	if err != nil {
		return false, err
	}

	return lo.ContainsBy(episodes, func(e api.Episode) bool { return e.ID == episodeID }), nil
}

// LastWatched returns the id of the episode opened last.
func (t *Title) LastWatched() (mo.Option[string], error) {
	return get(t.store, lastWatchedPrefix+t.id)
}

func (t *Title) SetLastWatched(episodeID string) error {
	return t.store.Set(lastWatchedPrefix+t.id, episodeID)
}

// Global holds the values not bound to a title.
type Global struct {
	store storage.Store
}

func NewGlobal(store storage.Store) *Global {
	return &Global{store: store}
}

// LastAnimeVisited returns the id of the title opened last.
func (g *Global) LastAnimeVisited() (mo.Option[string], error) {
	return get(g.store, lastAnimeVisitedKey)
}

func (g *Global) SetLastAnimeVisited(animeID string) error {
	return g.store.Set(lastAnimeVisitedKey, animeID)
}

func get(store storage.Store, k string) (mo.Option[string], error) {
	v, ok, err := store.Get(k)
	if err != nil {
		return mo.None[string](), err
	}

	if !ok || v == "" {
		return mo.None[string](), nil
	}

	return mo.Some(v), nil
}
