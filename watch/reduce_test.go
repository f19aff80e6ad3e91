package watch

import (
	"errors"
	"testing"
	"time"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/prefs"
	. "github.com/smartystreets/goconvey/convey"
)

func episodes(ids ...string) []api.Episode {
	eps := make([]api.Episode, len(ids))
	for i, id := range ids {
		eps[i] = api.Episode{ID: id, Number: i + 1}
	}
	return eps
}

func TestReduce(t *testing.T) {
	Convey("Given an idle state", t, func() {
		s := State{Phase: Idle, Current: Placeholder}

		Convey("A title request starts loading", func() {
			s = Reduce(s, TitleRequested{Generation: 1})
			So(s.Phase, ShouldEqual, LoadingTitle)
			So(s.Loading, ShouldBeTrue)

			Convey("An empty episode list ends in the empty state", func() {
				s = Reduce(s, TitleLoaded{Generation: 1, Info: &api.AnimeInfo{ID: "21"}})
				So(s.Phase, ShouldEqual, NoEpisodes)
				So(s.NoEpisodes, ShouldBeTrue)
				So(s.Loading, ShouldBeFalse)
			})

			Convey("A failed reload of an empty title keeps the empty state", func() {
				s = Reduce(s, TitleLoaded{Generation: 1})
				s = Reduce(s, TitleRequested{Generation: 2})
				So(s.NoEpisodes, ShouldBeTrue)

				s = Reduce(s, LoadFailed{Generation: 2, Err: errors.New("boom")})
				So(s.Phase, ShouldEqual, NoEpisodes)
				So(s.NoEpisodes, ShouldBeTrue)
				So(s.Loading, ShouldBeFalse)
			})

			Convey("A list moves on to resolving the episode", func() {
				s = Reduce(s, TitleLoaded{Generation: 1, Episodes: episodes("1", "2")})
				So(s.Phase, ShouldEqual, ResolvingEpisode)
				So(s.Current, ShouldResemble, Placeholder)

				Convey("Then through the episode and its sources to ready", func() {
					s = Reduce(s, EpisodeRequested{Generation: 1, EpisodeID: "2"})
					So(s.Phase, ShouldEqual, LoadingEpisode)

					s = Reduce(s, EpisodeResolved{Generation: 1, Episode: s.Episodes[1]})
					So(s.Phase, ShouldEqual, LoadingSources)
					So(s.Current.ID, ShouldEqual, "2")

					s = Reduce(s, SourcesLoaded{Generation: 1, URL: "https://embed/2"})
					So(s.Phase, ShouldEqual, Ready)
					So(s.Loading, ShouldBeFalse)
					So(s.EmbeddedURL, ShouldEqual, "https://embed/2")

					Convey("A failed episode request stays ready", func() {
						s = Reduce(s, EpisodeRequested{Generation: 2, EpisodeID: "1"})
						s = Reduce(s, LoadFailed{Generation: 2, Err: errors.New("boom")})
						So(s.Phase, ShouldEqual, Ready)
						So(s.Loading, ShouldBeFalse)
						So(s.Current.ID, ShouldEqual, "2")
						So(s.EmbeddedURL, ShouldEqual, "https://embed/2")
					})

					Convey("A failed source reload stays ready", func() {
						s = Reduce(s, SourcesRequested{Generation: 2})
						s = Reduce(s, LoadFailed{Generation: 2, Err: errors.New("boom")})
						So(s.Phase, ShouldEqual, Ready)
					})

					Convey("An empty server list keeps the previous URL", func() {
						s = Reduce(s, SourcesRequested{Generation: 2})
						s = Reduce(s, SourcesLoaded{Generation: 2})
						So(s.EmbeddedURL, ShouldEqual, "https://embed/2")
					})
				})
			})

			Convey("A failure returns to the idle phase", func() {
				s = Reduce(s, LoadFailed{Generation: 1, Err: errors.New("boom")})
				So(s.Loading, ShouldBeFalse)
				So(s.Phase, ShouldEqual, Idle)
				So(s.Current, ShouldResemble, Placeholder)
			})
		})

		Convey("Results of a superseded request are dropped", func() {
			s = Reduce(s, TitleRequested{Generation: 1})
			s = Reduce(s, TitleLoaded{Generation: 1, Episodes: episodes("1", "2", "3")})
			s = Reduce(s, EpisodeRequested{Generation: 2, EpisodeID: "2"})
			s = Reduce(s, EpisodeRequested{Generation: 3, EpisodeID: "3"})

			s = Reduce(s, EpisodeResolved{Generation: 3, Episode: s.Episodes[2]})
			s = Reduce(s, EpisodeResolved{Generation: 2, Episode: s.Episodes[1]})
			So(s.Current.ID, ShouldEqual, "3")

			s = Reduce(s, SourcesLoaded{Generation: 3, URL: "https://embed/3"})
			s = Reduce(s, SourcesLoaded{Generation: 2, URL: "https://embed/2"})
			So(s.EmbeddedURL, ShouldEqual, "https://embed/3")

			s = Reduce(s, LoadFailed{Generation: 2})
			So(s.Phase, ShouldEqual, Ready)
		})

		Convey("An older request never rewinds the generation", func() {
			s = Reduce(s, EpisodeRequested{Generation: 5, EpisodeID: "5"})
			s = Reduce(s, EpisodeRequested{Generation: 4, EpisodeID: "4"})
			So(s.Generation, ShouldEqual, 5)
		})

		Convey("A language change is flagged", func() {
			s = Reduce(s, LanguageSet{Language: prefs.LanguageDub})
			So(s.Language, ShouldEqual, prefs.LanguageDub)
			So(s.LanguageChanged, ShouldBeTrue)
		})

		Convey("Resize stores the width", func() {
			s = Reduce(s, Resized{Width: 120})
			So(s.PlayerWidth, ShouldEqual, 120)
		})
	})
}

func TestDerived(t *testing.T) {
	Convey("Given three episodes", t, func() {
		s := State{Episodes: episodes("1", "2", "3"), Current: Placeholder}

		Convey("The placeholder is not in the list", func() {
			So(s.CurrentIndex(), ShouldEqual, -1)
			So(s.HasNext(), ShouldBeFalse)
			So(s.HasPrevious(), ShouldBeFalse)
		})

		Convey("The first episode has only a next one", func() {
			s.Current = s.Episodes[0]
			So(s.CurrentIndex(), ShouldEqual, 0)
			So(s.HasNext(), ShouldBeTrue)
			So(s.HasPrevious(), ShouldBeFalse)
		})

		Convey("The last episode has only a previous one", func() {
			s.Current = s.Episodes[2]
			So(s.HasNext(), ShouldBeFalse)
			So(s.HasPrevious(), ShouldBeTrue)
		})
	})

	Convey("Given a next airing episode", t, func() {
		now := time.Unix(1_700_000_000, 0)
		s := State{Info: &api.AnimeInfo{NextAiringEpisode: &api.NextAiringEpisode{Episode: 12, AiringTime: now.Unix() + 3600}}}

		Convey("It is reported while in the future", func() {
			airing, ok := s.NextAiring(now).Get()
			So(ok, ShouldBeTrue)
			So(airing.Episode, ShouldEqual, 12)
			So(airing.Remaining, ShouldEqual, time.Hour)
			So(airing.At.UnixMilli(), ShouldEqual, (now.Unix()+3600)*1000)
		})

		Convey("It is not reported once passed", func() {
			So(s.NextAiring(now.Add(2*time.Hour)).IsAbsent(), ShouldBeTrue)
		})

		Convey("Nothing is reported without metadata", func() {
			So(State{}.NextAiring(now).IsAbsent(), ShouldBeTrue)
		})
	})
}
