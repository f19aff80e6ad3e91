package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/storage"
	"github.com/miru-cli/miru/watch"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fetcher struct {
	episodes []api.Episode
}

func (f *fetcher) FetchAnimeData(_ context.Context, id string) (*api.AnimeInfo, error) {
	return &api.AnimeInfo{ID: id, Title: api.Title{Romaji: "Mushishi"}}, nil
}

func (f *fetcher) FetchAnimeEpisodes(context.Context, string) ([]api.Episode, error) {
	return f.episodes, nil
}

func (f *fetcher) FetchEmbeddedServers(_ context.Context, episodeID string) ([]api.EmbeddedServer, error) {
	return []api.EmbeddedServer{
		{Name: "Vidstreaming", URL: "https://vid.test/" + episodeID},
		{Name: "Gogo server", URL: "https://gogo.test/" + episodeID},
	}, nil
}

func mushishi() *fetcher {
	return &fetcher{episodes: []api.Episode{
		{ID: "m1", Number: 1, Title: "The Green Seat"},
		{ID: "m2", Number: 2, Title: "The Light of the Eyelid"},
		{ID: "m3", Number: 3, Title: "The Soft Horn"},
	}}
}

func TestRun(t *testing.T) {
	Convey("Given a title with episodes", t, func() {
		var buf bytes.Buffer
		store := storage.NewMemory()
		options := &Options{
			Out:     &buf,
			Route:   watch.Route{AnimeID: "457"},
			Fetcher: mushishi(),
			Store:   store,
		}

		Convey("The embedded URL of the first episode is printed", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://vid.test/m1\n")
		})

		Convey("The route episode wins over the first one", func() {
			options.Route.EpisodeID = "m2"
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://vid.test/m2\n")
		})

		Convey("A selector picks the episode", func() {
			selector, err := ParseEpisodeSelector("@soft@")
			So(err, ShouldBeNil)
			options.Selector = mo.Some(selector)

			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://vid.test/m3\n")
		})

		Convey("A selector without match fails", func() {
			selector, _ := ParseEpisodeSelector("12")
			options.Selector = mo.Some(selector)

			So(Run(context.Background(), options), ShouldEqual, ErrNoSelection)
		})

		Convey("A selector with history records only the picked episode", func() {
			selector, err := ParseEpisodeSelector("last")
			So(err, ShouldBeNil)
			options.Selector = mo.Some(selector)
			options.SaveHistory = true

			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://vid.test/m3\n")

			title := prefs.ForTitle(store, "457")
			watched, err := title.Watched()
			So(err, ShouldBeNil)
			So(watched, ShouldHaveLength, 1)
			So(watched[0].ID, ShouldEqual, "m3")

			last, err := title.LastWatched()
			So(err, ShouldBeNil)
			So(last.OrEmpty(), ShouldEqual, "m3")
		})

		Convey("A selector without match records nothing", func() {
			selector, _ := ParseEpisodeSelector("12")
			options.Selector = mo.Some(selector)
			options.SaveHistory = true

			So(Run(context.Background(), options), ShouldEqual, ErrNoSelection)
			So(buf.String(), ShouldBeEmpty)

			_, ok, _ := store.Get("watched-episodes-457")
			So(ok, ShouldBeFalse)
		})

		Convey("The gogo source is used and stored", func() {
			options.SourceType = mo.Some(prefs.SourceGogo)
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://gogo.test/m1\n")

			v, _, _ := store.Get("source-[457]")
			So(v, ShouldEqual, "gogo")
		})

		Convey("JSON output describes the resolved episode", func() {
			options.Json = true
			options.Language = mo.Some(prefs.LanguageDub)
			So(Run(context.Background(), options), ShouldBeNil)

			var out Output
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out.AnimeID, ShouldEqual, "457")
			So(out.Anime.Title.Romaji, ShouldEqual, "Mushishi")
			So(out.Episode.ID, ShouldEqual, "m1")
			So(out.Servers, ShouldHaveLength, 2)
			So(out.EmbeddedURL, ShouldEqual, "https://vid.test/m1")
			So(out.Language, ShouldEqual, prefs.LanguageDub)
			So(out.Episodes, ShouldBeEmpty)
		})

		Convey("History is only written when asked", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			_, ok, _ := store.Get("watched-episodes-457")
			So(ok, ShouldBeFalse)

			options.SaveHistory = true
			So(Run(context.Background(), options), ShouldBeNil)
			_, ok, _ = store.Get("watched-episodes-457")
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given a title without episodes", t, func() {
		var buf bytes.Buffer
		options := &Options{
			Out:     &buf,
			Route:   watch.Route{AnimeID: "1"},
			Fetcher: &fetcher{},
			Store:   storage.NewMemory(),
		}

		Convey("Plain output fails", func() {
			So(Run(context.Background(), options), ShouldEqual, ErrNoEpisodes)
		})

		Convey("JSON output reports the empty state", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var out Output
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out.NoEpisodes, ShouldBeTrue)
			So(out.Episode, ShouldBeNil)
			So(out.Servers, ShouldBeEmpty)
		})
	})
}

func TestParseEpisodeSelector(t *testing.T) {
	Convey("Given an episode list", t, func() {
		episodes := mushishi().episodes

		pick := func(description string) string {
			selector, err := ParseEpisodeSelector(description)
			So(err, ShouldBeNil)
			episode, ok := selector(episodes)
			if !ok {
				return ""
			}
			return episode.ID
		}

		So(pick("first"), ShouldEqual, "m1")
		So(pick("last"), ShouldEqual, "m3")
		So(pick("2"), ShouldEqual, "m2")
		So(pick("@GREEN@"), ShouldEqual, "m1")
		So(pick("9"), ShouldBeEmpty)

		Convey("Unknown descriptions are rejected", func() {
			_, err := ParseEpisodeSelector("sometimes")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("The schema names the output fields", t, func() {
		data, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "embeddedUrl")
		So(string(data), ShouldContainSubstring, "noEpisodes")
	})
}
