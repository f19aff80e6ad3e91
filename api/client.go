// Package api is the client of the anime metadata API: title data, episode
// lists and embedded servers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/miru-cli/miru/internal/cache"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/network"
	"github.com/miru-cli/miru/where"
	"github.com/spf13/viper"
)

// StatusError is returned for non-2xx answers.
type StatusError struct {
	URL  string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.URL, e.Code)
}

// Client talks to the metadata API under BaseURL.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	// Cache, when set, keeps title data and episode lists.
	// Server lists are always fetched since embed links expire.
	Cache *cache.Cache
}

// New builds a client from the api.* and network.* keys.
func New() *Client {
	c := &Client{
		BaseURL: viper.GetString(key.APIBaseURL),
		HTTP:    network.New(),
	}

	if viper.GetBool(key.APICache) {
		ttl := time.Duration(viper.GetInt(key.APICacheTTL)) * time.Minute
		c.Cache = cache.New(where.Responses(), ttl)
	}

	return c
}

func (c *Client) endpoint(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return strings.TrimSuffix(c.BaseURL, "/") + "/meta/anilist/" + strings.Join(escaped, "/")
}

func (c *Client) get(ctx context.Context, target any, cached bool, parts ...string) error {
	u := c.endpoint(parts...)
	cacheKey := cache.Key(u)

	if cached && c.Cache != nil && c.Cache.Read(cacheKey, target) {
		log.Tracef("cache hit %s", u)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s: %w", u, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: u, Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}

	if cached && c.Cache != nil {
		if err := c.Cache.Write(cacheKey, target); err != nil {
			log.Warnf("cache write %s: %s", u, err)
		}
	}

	return nil
}

// FetchAnimeData returns the metadata of a title.
func (c *Client) FetchAnimeData(ctx context.Context, animeID string) (*AnimeInfo, error) {
	var info AnimeInfo
	if err := c.get(ctx, &info, true, "data", animeID); err != nil {
		return nil, err
	}
	return &info, nil
}

// FetchAnimeInfo returns the extended metadata of a title, episodes excluded.
func (c *Client) FetchAnimeInfo(ctx context.Context, animeID string) (*AnimeInfo, error) {
	var info AnimeInfo
	if err := c.get(ctx, &info, true, "info", animeID); err != nil {
		return nil, err
	}
	return &info, nil
}

// FetchAnimeEpisodes returns the episode list of a title in broadcast order.
func (c *Client) FetchAnimeEpisodes(ctx context.Context, animeID string) ([]Episode, error) {
	var episodes []Episode
	if err := c.get(ctx, &episodes, true, "episodes", animeID); err != nil {
		return nil, err
	}
	return episodes, nil
}

// FetchEmbeddedServers returns the hosts serving an episode.
func (c *Client) FetchEmbeddedServers(ctx context.Context, episodeID string) ([]EmbeddedServer, error) {
	var servers []EmbeddedServer
	if err := c.get(ctx, &servers, false, "servers", episodeID); err != nil {
		return nil, err
	}
	return servers, nil
}
