package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/internal/ui"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/layout"
	"github.com/miru-cli/miru/player"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/storage"
	"github.com/miru-cli/miru/watch"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type fetcher struct {
	info     *api.AnimeInfo
	episodes []api.Episode
}

func (f *fetcher) FetchAnimeData(context.Context, string) (*api.AnimeInfo, error) {
	return f.info, nil
}

func (f *fetcher) FetchAnimeEpisodes(context.Context, string) ([]api.Episode, error) {
	return f.episodes, nil
}

func (f *fetcher) FetchEmbeddedServers(_ context.Context, episodeID string) ([]api.EmbeddedServer, error) {
	return []api.EmbeddedServer{
		{Name: "Gogo server", URL: "https://gogo.test/" + episodeID},
		{Name: "Vidstreaming", URL: "https://vid.test/" + episodeID},
	}, nil
}

type fakePlayer struct {
	mu     sync.Mutex
	played []player.Media
	done   chan struct{}
}

func (p *fakePlayer) Play(media player.Media) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.played = append(p.played, media)
	p.done = make(chan struct{})
	return nil
}

func (p *fakePlayer) Wait() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *fakePlayer) Close() error { return nil }

func (p *fakePlayer) urls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	urls := make([]string, len(p.played))
	for i, m := range p.played {
		urls[i] = m.URL
	}
	return urls
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(f *fetcher) (*model, *fakePlayer, *[]string, storage.Store) {
	store := storage.NewMemory()
	session := watch.NewSession(watch.Route{AnimeID: "154587"}, f, store, watch.Options{SaveHistory: true})
	p := &fakePlayer{}
	opened := &[]string{}

	m := newModel(context.Background(), &Options{
		Session: session,
		Store:   store,
		Player:  p,
		Open: func(target string) error {
			*opened = append(*opened, target)
			return nil
		},
	})
	m.rules = layout.Rules{StackBelow: 100, SidebarWidth: 40, Gap: 1}
	m.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	return m, p, opened, store
}

func mounted(f *fetcher) (*model, *fakePlayer, *[]string, storage.Store) {
	m, p, opened, store := newTestModel(f)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	So(m.session.Mount(context.Background()), ShouldBeNil)
	m.Update(changedMsg{})
	return m, p, opened, store
}

// deliver runs cmd and feeds what it produces back into m, one level deep.
func deliver(m *model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			deliver(m, c)
		}
		return
	}

	if msg != nil {
		m.Update(msg)
	}
}

func press(m *model, msg tea.KeyMsg) {
	_, cmd := m.Update(msg)
	deliver(m, cmd)
}

func frieren() *fetcher {
	return &fetcher{
		info: &api.AnimeInfo{
			ID:          "154587",
			Title:       api.Title{Romaji: "Sousou no Frieren", English: "Frieren: Beyond Journey's End"},
			Status:      "RELEASING",
			Description: "The adventure is over but life goes on for an elf mage just beginning to learn what living is all about.",
			Trailer:     &api.Trailer{ID: "qgQJ5E9e4Uw", Site: "youtube"},
			NextAiringEpisode: &api.NextAiringEpisode{
				Episode:    4,
				AiringTime: 1_700_000_000 + 2*3600 + 5*60,
			},
		},
		episodes: []api.Episode{
			{ID: "e1", Number: 1, Title: "The Journey's End"},
			{ID: "e2", Number: 2, Title: "It Didn't Have to Be Magic..."},
			{ID: "e3", Number: 3, Title: "Killing Magic"},
		},
	}
}

func TestModel(t *testing.T) {
	Convey("Given a mounted watch screen", t, func() {
		viper.Set(key.PlayerAutoNext, true)
		defer viper.Set(key.PlayerAutoNext, nil)

		m, p, opened, store := mounted(frieren())

		Convey("The player width follows the measured layout", func() {
			So(m.layout.Stacked, ShouldBeFalse)
			So(m.session.State().PlayerWidth, ShouldEqual, 120-1-40)
		})

		Convey("A narrow terminal stacks the panes", func() {
			m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
			So(m.layout.Stacked, ShouldBeTrue)
			So(m.session.State().PlayerWidth, ShouldEqual, 80)
		})

		Convey("The view shows the title, badges, countdown and embedded URL", func() {
			view := m.View()
			So(view, ShouldContainSubstring, "Frieren")
			So(view, ShouldContainSubstring, "sub")
			So(view, ShouldContainSubstring, "2h 5m")
			So(view, ShouldContainSubstring, "https://vid.test/e1")
			So(view, ShouldContainSubstring, "Episode 1")
		})

		Convey("The list holds every episode and marks the opened one as watched", func() {
			items := m.episodesC.Items()
			So(items, ShouldHaveLength, 3)
			So(items[0].(episodeItem).watched, ShouldBeTrue)
			So(items[0].(episodeItem).current, ShouldBeTrue)
			So(items[1].(episodeItem).watched, ShouldBeFalse)
		})

		Convey("n moves to the next episode", func() {
			cmd := m.handleKey(runes("n"))
			So(cmd, ShouldNotBeNil)
			m.Update(cmd())

			So(m.state.Current.ID, ShouldEqual, "e2")
			So(m.state.EmbeddedURL, ShouldEqual, "https://vid.test/e2")
			So(m.episodesC.Index(), ShouldEqual, 1)
		})

		Convey("p does nothing on the first episode", func() {
			m.Update(m.handleKey(runes("p"))())
			So(m.state.Current.ID, ShouldEqual, "e1")
		})

		Convey("enter plays the current episode", func() {
			m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
			So(p.urls(), ShouldResemble, []string{"https://vid.test/e1"})
		})

		Convey("enter on another episode loads it, then plays it", func() {
			m.episodesC.Select(2)
			cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
			So(p.urls(), ShouldBeEmpty)

			m.Update(cmd())
			So(m.state.Current.ID, ShouldEqual, "e3")
			So(p.urls(), ShouldResemble, []string{"https://vid.test/e3"})
		})

		Convey("When playback ends", func() {
			m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("The next episode is played", func() {
				cmd := m.playbackEnded(m.playSeq)
				So(cmd, ShouldNotBeNil)
				m.Update(cmd())

				So(m.state.Current.ID, ShouldEqual, "e2")
				So(p.urls(), ShouldResemble, []string{"https://vid.test/e1", "https://vid.test/e2"})
			})

			Convey("An older playback is ignored", func() {
				So(m.playbackEnded(m.playSeq-1), ShouldBeNil)
			})

			Convey("Nothing happens with autonext disabled", func() {
				viper.Set(key.PlayerAutoNext, false)
				So(m.playbackEnded(m.playSeq), ShouldBeNil)
			})
		})

		Convey("l toggles and stores the language", func() {
			m.handleKey(runes("l"))

			So(m.state.Language, ShouldEqual, prefs.LanguageDub)
			So(m.state.LanguageChanged, ShouldBeTrue)

			v, ok, err := store.Get("subOrDub-[154587]")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "dub")
		})

		Convey("s switches to the gogo server and back", func() {
			press(m, runes("s"))

			v, _, err := store.Get("source-[154587]")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "gogo")
			So(m.state.SourceType, ShouldEqual, prefs.SourceGogo)
			So(m.state.EmbeddedURL, ShouldEqual, "https://gogo.test/e1")
			So(m.notifier.Current(), ShouldEqual, "Source changed to Gogo")

			press(m, runes("s"))

			v, _, _ = store.Get("source-[154587]")
			So(v, ShouldEqual, "default")
			So(m.state.EmbeddedURL, ShouldEqual, "https://vid.test/e1")
		})

		Convey("s toggles from the session even before the screen catches up", func() {
			So(m.session.ChangeSourceType(context.Background(), prefs.SourceGogo), ShouldBeNil)
			So(m.state.SourceType, ShouldEqual, prefs.SourceDefault)

			press(m, runes("s"))

			v, _, _ := store.Get("source-[154587]")
			So(v, ShouldEqual, "default")
			So(m.state.SourceType, ShouldEqual, prefs.SourceDefault)
			So(m.state.EmbeddedURL, ShouldEqual, "https://vid.test/e1")
		})

		Convey("o opens the embedded page and t the trailer", func() {
			m.handleKey(runes("o"))
			m.handleKey(runes("t"))
			So(*opened, ShouldResemble, []string{
				"https://vid.test/e1",
				"https://www.youtube.com/embed/qgQJ5E9e4Uw",
			})
		})

		Convey("q quits", func() {
			cmd := m.handleKey(runes("q"))
			So(cmd(), ShouldHaveSameTypeAs, tea.QuitMsg{})
		})

		Convey("A failed action is flashed", func() {
			m.Update(errMsg{fmt.Errorf("fetch embedded servers: boom")})
			So(m.notifier.Current(), ShouldBeEmpty)

			m.Update(ui.NotifyMsg("fetch embedded servers: boom"))
			So(m.View(), ShouldContainSubstring, "boom")
		})
	})

	Convey("Given a title without episodes", t, func() {
		f := frieren()
		f.episodes = nil

		m, _, _, _ := mounted(f)

		Convey("One pane shows the empty state without the episode list", func() {
			So(m.state.NoEpisodes, ShouldBeTrue)
			So(m.episodesC.Items(), ShouldBeEmpty)

			view := m.View()
			So(view, ShouldContainSubstring, "No episodes found")
			So(view, ShouldNotContainSubstring, "Episodes")
			So(view, ShouldNotContainSubstring, "No episodes.")
			So(strings.Count(view, "╭"), ShouldEqual, 1)
		})

		Convey("The empty state stays a single pane when stacked", func() {
			m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
			view := m.View()
			So(view, ShouldContainSubstring, "No episodes found")
			So(view, ShouldNotContainSubstring, "Episodes")
			So(strings.Count(view, "╭"), ShouldEqual, 1)
		})

		Convey("enter does nothing", func() {
			So(m.handleKey(tea.KeyMsg{Type: tea.KeyEnter}), ShouldBeNil)
		})
	})
}

func TestFuzzyFilter(t *testing.T) {
	Convey("Given episode filter values", t, func() {
		targets := []string{"1 The Journey's End", "2 It Didn't Have to Be Magic", "3 Killing Magic"}

		Convey("Matches are ranked by distance", func() {
			ranks := fuzzyFilter("magic", targets)
			So(ranks, ShouldHaveLength, 2)
			So(ranks[0].Index, ShouldEqual, 2)
			So(ranks[1].Index, ShouldEqual, 1)
		})

		Convey("Non matching terms yield nothing", func() {
			So(fuzzyFilter("zoltraak", targets), ShouldBeEmpty)
		})
	})
}
