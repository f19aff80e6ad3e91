// Package config declares the settings of miru and loads them through viper
// from defaults, MIRU_* environment variables and the TOML config file.
package config

import (
	"fmt"
	"strings"

	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state: defaults, environment bindings and the config file.
func Setup() error {
	viper.SetConfigName(constant.Miru)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Miru)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return Validate()
}

// Validate reports the first field holding a value outside of its allowed set.
func Validate() error {
	for _, f := range fields {
		if len(f.Allowed) == 0 {
			continue
		}

		value := strings.ToLower(viper.GetString(f.Key))
		if !lo.Contains(f.Allowed, value) {
			return fmt.Errorf("invalid value %q for %s, expected one of: %s", value, f.Key, strings.Join(f.Allowed, ", "))
		}
	}

	return nil
}
