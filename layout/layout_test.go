package layout

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMeasure(t *testing.T) {
	Convey("Given the default rules", t, func() {
		rules := Rules{StackBelow: 100, SidebarWidth: 42, Gap: 1}

		Convey("A narrow terminal stacks the panes", func() {
			l := rules.Measure(80)
			So(l.Stacked, ShouldBeTrue)
			So(l.PlayerWidth, ShouldEqual, 80)
			So(l.ListWidth, ShouldEqual, 80)
		})

		Convey("A wide terminal puts the list beside the player", func() {
			l := rules.Measure(160)
			So(l.Stacked, ShouldBeFalse)
			So(l.ListWidth, ShouldEqual, 42)
			So(l.PlayerWidth, ShouldEqual, 117)
		})

		Convey("The threshold itself is side by side", func() {
			So(rules.Measure(100).Stacked, ShouldBeFalse)
			So(rules.Measure(99).Stacked, ShouldBeTrue)
		})

		Convey("An unknown width stacks with nothing measured", func() {
			l := rules.Measure(0)
			So(l.Stacked, ShouldBeTrue)
			So(l.PlayerWidth, ShouldEqual, 0)
		})
	})

	Convey("The list never outgrows the player", t, func() {
		l := Rules{StackBelow: 10, SidebarWidth: 80, Gap: 1}.Measure(101)
		So(l.ListWidth, ShouldEqual, 50)
		So(l.PlayerWidth, ShouldEqual, 50)
	})
}
