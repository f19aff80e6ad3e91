package util

import (
	"testing"
	"time"

	"github.com/miru-cli/miru/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
		So(Quantify(0, "episode", "episodes"), ShouldEqual, "0 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("dub"), ShouldEqual, "Dub")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestCountdown(t *testing.T) {
	Convey("Countdown", t, func() {
		So(Countdown(30*time.Second), ShouldEqual, "<1m")
		So(Countdown(5*time.Minute), ShouldEqual, "5m")
		So(Countdown(2*time.Hour+3*time.Minute), ShouldEqual, "2h 3m")
		So(Countdown(49*time.Hour), ShouldEqual, "2d 1h 0m")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/miru/sub", 0o755), ShouldBeNil)
		So(fs.WriteFile("/tmp/miru/sub/a", []byte("a"), 0o644), ShouldBeNil)

		Convey("Delete removes it recursively", func() {
			So(Delete("/tmp/miru"), ShouldBeNil)
			So(lo.Must(fs.Exists("/tmp/miru")), ShouldBeFalse)
		})

		Convey("Delete of a missing path fails", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
