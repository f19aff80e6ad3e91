package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		m := &Model{}

		Convey("View returns the content untouched", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("When a notification arrives", func() {
			cmd := m.Update(NotifyMsg("Language changed"))

			Convey("It is shown on the last line and a clear is scheduled", func() {
				So(cmd, ShouldNotBeNil)
				So(m.Current(), ShouldEqual, "Language changed")
				So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
				So(m.View("a\nb"), ShouldContainSubstring, "Language changed")
			})

			Convey("Its own clear hides it", func() {
				m.Update(ClearNotificationMsg{seq: m.seq})
				So(m.Current(), ShouldBeEmpty)
			})

			Convey("A clear scheduled earlier keeps a newer notification", func() {
				stale := m.seq
				m.Update(NotifyMsg("Source changed"))
				m.Update(ClearNotificationMsg{seq: stale})
				So(m.Current(), ShouldEqual, "Source changed")
			})
		})

		Convey("Notify produces a NotifyMsg", func() {
			So(Notify("hi")(), ShouldEqual, NotifyMsg("hi"))
		})

		Convey("Unrelated messages are ignored", func() {
			So(m.Update(42), ShouldBeNil)
			So(m.Current(), ShouldBeEmpty)
		})
	})
}
