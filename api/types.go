package api

import (
	"fmt"
	"time"
)

// Episode is one entry of a title's episode list.
type Episode struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	ImageHash   string `json:"imageHash"`
	AirDate     string `json:"airDate"`
}

// Title holds the name variants of an anime.
type Title struct {
	Romaji        string `json:"romaji"`
	English       string `json:"english"`
	Native        string `json:"native"`
	UserPreferred string `json:"userPreferred"`
}

// Display picks the English name, then Romaji, then whatever is set.
func (t Title) Display() string {
	for _, s := range []string{t.English, t.Romaji, t.UserPreferred, t.Native} {
		if s != "" {
			return s
		}
	}
	return ""
}

type Trailer struct {
	ID        string `json:"id"`
	Site      string `json:"site"`
	Thumbnail string `json:"thumbnail"`
}

// EmbedURL returns the player URL of a YouTube trailer, or an empty string.
func (t *Trailer) EmbedURL() string {
	if t == nil || t.ID == "" {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s", t.ID)
}

// NextAiringEpisode announces the next broadcast. AiringTime is in epoch seconds.
type NextAiringEpisode struct {
	Episode    int   `json:"episode"`
	AiringTime int64 `json:"airingTime"`
}

// At converts AiringTime to a time.Time.
func (n NextAiringEpisode) At() time.Time {
	return time.UnixMilli(n.AiringTime * 1000)
}

// AnimeInfo is the metadata shown above the player.
type AnimeInfo struct {
	ID                string             `json:"id"`
	Title             Title              `json:"title"`
	BackgroundImage   string             `json:"cover"`
	Trailer           *Trailer           `json:"trailer,omitempty"`
	NextAiringEpisode *NextAiringEpisode `json:"nextAiringEpisode,omitempty"`
	Description       string             `json:"description"`
	Status            string             `json:"status"`
	TotalEpisodes     int                `json:"totalEpisodes"`
	Genres            []string           `json:"genres"`
}

// EmbeddedServer is a third-party host offering a playable page for one episode.
type EmbeddedServer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
