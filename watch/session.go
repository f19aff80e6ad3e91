package watch

import (
	"context"
	"fmt"
	"sync"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/storage"
)

// Fetcher is the part of the metadata API the session needs.
type Fetcher interface {
	FetchAnimeData(ctx context.Context, animeID string) (*api.AnimeInfo, error)
	FetchAnimeEpisodes(ctx context.Context, animeID string) ([]api.Episode, error)
	FetchEmbeddedServers(ctx context.Context, episodeID string) ([]api.EmbeddedServer, error)
}

type Options struct {
	// SaveHistory records opened episodes in the watched set.
	SaveHistory bool

	// Pick chooses the episode Mount opens, taking precedence over the route.
	// An error aborts the mount before anything is loaded or recorded.
	Pick func(episodes []api.Episode) (string, error)
}

// Session owns the state of one watch screen.
// It is safe for concurrent use; fetches run without holding the lock.
type Session struct {
	fetcher Fetcher
	title   *prefs.Title
	global  *prefs.Global
	options Options

	mu        sync.Mutex
	state     State
	gen       uint64
	listeners map[int]func(State)
	nextID    int
}

// NewSession prepares a session for route. Preferences are read from store.
func NewSession(route Route, fetcher Fetcher, store storage.Store, options Options) *Session {
	title := prefs.ForTitle(store, route.AnimeID)

	sourceType, err := title.SourceType()
	if err != nil {
		log.Warnf("read source type of %s: %s", route.AnimeID, err)
		sourceType = prefs.SourceDefault
	}

	language, err := title.Language()
	if err != nil {
		log.Warnf("read language of %s: %s", route.AnimeID, err)
		language = prefs.LanguageSub
	}

	return &Session{
		fetcher: fetcher,
		title:   title,
		global:  prefs.NewGlobal(store),
		options: options,
		state: State{
			Route:      route,
			Phase:      Idle,
			Current:    Placeholder,
			SourceType: sourceType,
			Language:   language,
			Loading:    true,
		},
		listeners: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// OnChange registers fn to receive every new snapshot and returns a function removing it.
func (s *Session) OnChange(fn func(State)) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Session) dispatch(e Event) State {
	s.mu.Lock()
	s.state = Reduce(s.state, e)
	state := s.state
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}

	return state
}

func (s *Session) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	return s.gen
}

func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Generation == gen
}

func (s *Session) fail(gen uint64, err error, fields log.Fields) error {
	log.With(fields).Error(err)
	s.dispatch(LoadFailed{Generation: gen, Err: err})
	return err
}

// Mount loads the title and its episode list, then the picked episode,
// the route's episode or the first one, in that order.
func (s *Session) Mount(ctx context.Context) error {
	gen := s.nextGeneration()
	state := s.dispatch(TitleRequested{Generation: gen})
	animeID := state.Route.AnimeID
	fields := log.Fields{"anime": animeID}

	info, err := s.fetcher.FetchAnimeData(ctx, animeID)
	if err != nil {
		return s.fail(gen, fmt.Errorf("fetch anime data: %w", err), fields)
	}

	episodes, err := s.fetcher.FetchAnimeEpisodes(ctx, animeID)
	if err != nil {
		return s.fail(gen, fmt.Errorf("fetch episodes: %w", err), fields)
	}

	if err := s.global.SetLastAnimeVisited(animeID); err != nil {
		log.With(fields).Warnf("save last visited: %s", err)
	}

	state = s.dispatch(TitleLoaded{Generation: gen, Info: info, Episodes: episodes})
	if state.Generation != gen || state.Phase == NoEpisodes {
		return nil
	}

	episodeID := state.Route.EpisodeID
	if s.options.Pick != nil {
		if episodeID, err = s.options.Pick(state.Episodes); err != nil {
			return s.fail(gen, err, fields)
		}
	}
	if episodeID == "" {
		episodeID = episodes[0].ID
	}

	return s.loadEpisode(ctx, gen, episodeID)
}

func (s *Session) loadEpisode(ctx context.Context, gen uint64, episodeID string) error {
	state := s.dispatch(EpisodeRequested{Generation: gen, EpisodeID: episodeID})
	fields := log.Fields{"anime": state.Route.AnimeID, "episode": episodeID}

	episode, err := FindEpisode(state.Episodes, episodeID)
	if err != nil {
		return s.fail(gen, fmt.Errorf("load episode %s: %w", episodeID, err), fields)
	}

	state = s.dispatch(EpisodeResolved{Generation: gen, Episode: episode})
	if state.Generation != gen {
		return nil
	}

	if s.options.SaveHistory {
		if _, err := s.title.MarkWatched(episode); err != nil {
			log.With(fields).Warnf("save watched episode: %s", err)
		}
		if err := s.title.SetLastWatched(episode.ID); err != nil {
			log.With(fields).Warnf("save last watched: %s", err)
		}
	}

	return s.loadSources(ctx, gen, state.SourceType, episode.ID)
}

func (s *Session) loadSources(ctx context.Context, gen uint64, sourceType prefs.SourceType, episodeID string) error {
	fields := log.Fields{"episode": episodeID, "source": sourceType}

	servers, err := s.fetcher.FetchEmbeddedServers(ctx, episodeID)
	if err != nil {
		return s.fail(gen, fmt.Errorf("fetch embedded servers: %w", err), fields)
	}

	server, _ := SelectServer(servers, sourceType)
	state := s.dispatch(SourcesLoaded{Generation: gen, Servers: servers, URL: server.URL})
	if state.Generation == gen {
		log.With(fields).Debugf("selected server %q", server.Name)
	}

	return nil
}

// SelectEpisode makes episodeID current. Results of earlier selections
// still in flight are discarded.
func (s *Session) SelectEpisode(ctx context.Context, episodeID string) error {
	return s.loadEpisode(ctx, s.nextGeneration(), episodeID)
}

// NextEpisode moves to the following episode. It does nothing on the last one.
func (s *Session) NextEpisode(ctx context.Context) error {
	state := s.State()
	if !state.HasNext() {
		return nil
	}
	return s.SelectEpisode(ctx, state.Episodes[state.CurrentIndex()+1].ID)
}

// PreviousEpisode moves to the preceding episode. It does nothing on the first one.
func (s *Session) PreviousEpisode(ctx context.Context) error {
	state := s.State()
	if !state.HasPrevious() {
		return nil
	}
	return s.SelectEpisode(ctx, state.Episodes[state.CurrentIndex()-1].ID)
}

// EpisodeEnded advances after playback finished.
func (s *Session) EpisodeEnded(ctx context.Context) error {
	return s.NextEpisode(ctx)
}

// ChangeLanguage stores the language of the title and flags the change.
func (s *Session) ChangeLanguage(language prefs.Language) error {
	if err := s.title.SetLanguage(language); err != nil {
		return fmt.Errorf("save language: %w", err)
	}

	s.dispatch(LanguageSet{Language: language})
	return nil
}

// ChangeSourceType stores the source type of the title and reloads the
// servers of the current episode with it.
func (s *Session) ChangeSourceType(ctx context.Context, sourceType prefs.SourceType) error {
	if err := s.title.SetSourceType(sourceType); err != nil {
		return fmt.Errorf("save source type: %w", err)
	}

	state := s.dispatch(SourceTypeSet{SourceType: sourceType})
	if state.CurrentIndex() < 0 {
		return nil
	}

	gen := s.nextGeneration()
	s.dispatch(SourcesRequested{Generation: gen})
	return s.loadSources(ctx, gen, sourceType, state.Current.ID)
}

// Resize records the width available to the player.
func (s *Session) Resize(width int) {
	s.dispatch(Resized{Width: width})
}

// Unmount drops listeners and discards the results of loads still in flight.
func (s *Session) Unmount() {
	gen := s.nextGeneration()

	s.mu.Lock()
	s.state.Generation = gen
	s.state.Loading = false
	s.listeners = make(map[int]func(State))
	s.mu.Unlock()
}

