package config

import (
	"testing"

	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.DeployPlatform), ShouldEqual, "cloudflare")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("deploy.platform"), ShouldEqual, "deploy_platform")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("It is valid", func() {
			So(Validate(), ShouldBeNil)
		})

		Convey("An unknown deploy platform is rejected", func() {
			viper.Set(key.DeployPlatform, "netlify")
			defer viper.Set(key.DeployPlatform, "cloudflare")

			err := Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.DeployPlatform)
		})

		Convey("Values are compared case-insensitively", func() {
			viper.Set(key.DeployPlatform, "VERCEL")
			defer viper.Set(key.DeployPlatform, "cloudflare")

			So(Validate(), ShouldBeNil)
		})
	})
}

func TestFieldEnv(t *testing.T) {
	Convey("Field.Env prefixes the application name", t, func() {
		f := Default[key.DeployPlatform]
		So(f.Env(), ShouldEqual, "MIRU_DEPLOY_PLATFORM")
	})
}

func TestFieldPretty(t *testing.T) {
	Convey("Given the player field", t, func() {
		So(Setup(), ShouldBeNil)
		f := Default[key.Player]

		Convey("Pretty lists the allowed values", func() {
			pretty := f.Pretty()
			So(pretty, ShouldContainSubstring, key.Player)
			So(pretty, ShouldContainSubstring, "mpv, browser")
			So(pretty, ShouldContainSubstring, "MIRU_PLAYER_DEFAULT")
		})

		Convey("Type follows the default value", func() {
			So(f.Type(), ShouldEqual, "string")
			port := Default[key.AuthCallbackPort]
			So(port.Type(), ShouldEqual, "int")
		})
	})
}

func TestValidateLevels(t *testing.T) {
	Convey("An unknown log level is rejected", t, func() {
		So(Setup(), ShouldBeNil)
		viper.Set(key.LogsLevel, "verbose")
		defer viper.Set(key.LogsLevel, "info")

		So(Validate(), ShouldNotBeNil)
	})
}
