package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logs are disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Records are dropped silently", func() {
			So(func() { Error("nothing") }, ShouldNotPanic)
		})
	})

	Convey("Given logs are enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Records land in today's file", func() {
			With(Fields{"anime": "21"}).Warn("fetch failed")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			contents := string(lo.Must(filesystem.API().ReadFile(path)))
			So(strings.Contains(contents, "fetch failed"), ShouldBeTrue)
			So(strings.Contains(contents, "anime=21"), ShouldBeTrue)
		})
	})
}
