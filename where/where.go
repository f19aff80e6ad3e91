// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "MIRU_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring MIRU_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Miru))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Miru))
}

// Logs resolves the directory of daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Storage resolves the local key/value store file holding preferences,
// watched sets and, unless the keyring is enabled, the access token.
func Storage() string {
	return filepath.Join(Config(), "storage.json")
}

// Recent resolves the file ranking recently opened titles.
func Recent() string {
	return filepath.Join(Cache(), "recent.json")
}

// Responses resolves the directory of cached metadata API responses.
func Responses() string {
	return ensureDir(filepath.Join(Cache(), "responses"))
}
