package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		u, err := sanitizeMediaTarget("  https://embed.example/e/1  ")
		So(err, ShouldBeNil)
		So(u, ShouldEqual, "https://embed.example/e/1")

		for _, bad := range []string{"", "--script=evil.lua", "file:///etc/passwd", "https://a\nb", "/local/file.mkv"} {
			_, err := sanitizeMediaTarget(bad)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle flattens the title", t, func() {
		So(sanitizeTitle(" One Piece\n- 1\x00 "), ShouldEqual, "One Piece - 1")
	})
}

func TestMpvArgs(t *testing.T) {
	Convey("The target comes after the end of options", t, func() {
		args := mpvArgs("https://embed/1", "Ep 1")
		So(args[len(args)-2], ShouldEqual, "--")
		So(args[len(args)-1], ShouldEqual, "https://embed/1")
		So(args, ShouldContain, "--force-media-title=Ep 1")
	})
}

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		p, err := New("MPV")
		So(err, ShouldBeNil)
		So(p, ShouldHaveSameTypeAs, &MPV{})

		p, err = New("browser")
		So(err, ShouldBeNil)
		So(p.Wait(), ShouldBeNil)

		_, err = New("vlc")
		So(err, ShouldNotBeNil)
	})
}

func TestBrowser(t *testing.T) {
	Convey("Given a browser player", t, func() {
		var opened []string
		b := &Browser{start: func(u string) error {
			opened = append(opened, u)
			return nil
		}}

		Convey("It opens valid targets", func() {
			So(b.Play(Media{URL: "https://embed/1"}), ShouldBeNil)
			So(opened, ShouldResemble, []string{"https://embed/1"})
		})

		Convey("It refuses invalid ones", func() {
			So(b.Play(Media{URL: "-x"}), ShouldNotBeNil)
			So(opened, ShouldBeEmpty)
		})
	})
}

func TestMPVWithoutBinary(t *testing.T) {
	Convey("A missing mpv binary is reported", t, func() {
		m := &MPV{Binary: "/nonexistent/mpv"}
		So(m.Play(Media{URL: "https://embed/1", Title: "t"}), ShouldNotBeNil)
		So(m.Wait(), ShouldBeNil)
		So(m.Close(), ShouldBeNil)
	})
}
