package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/metafates/gache"
	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/network"
	"github.com/miru-cli/miru/where"
)

const (
	releasesAPI = "https://api.github.com/repos/miru-cli/miru/releases/latest"
	releasesURL = "https://github.com/miru-cli/miru/releases/tag/v"
)

// Checker finds the latest release, remembering it for two days.
type Checker struct {
	URL   string
	HTTP  *http.Client
	cache *gache.Cache[string]
}

// NewChecker returns a checker for the public releases feed.
func NewChecker() *Checker {
	return &Checker{
		URL:  releasesAPI,
		HTTP: network.New(),
		cache: gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   48 * time.Hour,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

// Latest returns the newest release version without its "v" prefix.
func (c *Checker) Latest(ctx context.Context) (string, error) {
	if c.cache != nil {
		if v, expired, err := c.cache.Get(); err == nil && !expired && v != "" {
			return v, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: unexpected status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	v := strings.TrimPrefix(release.TagName, "v")
	if c.cache != nil {
		_ = c.cache.Set(v)
	}
	return v, nil
}
