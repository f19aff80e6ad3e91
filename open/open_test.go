package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("command picks the handler per OS", t, func() {
		name, args, err := command("linux", "https://anilist.co")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "xdg-open")
		So(args, ShouldResemble, []string{"https://anilist.co"})

		name, _, err = command("darwin", "https://anilist.co")
		So(err, ShouldBeNil)
		So(name, ShouldEqual, "open")

		_, _, err = command("plan9", "https://anilist.co")
		So(err, ShouldNotBeNil)
	})
}
