package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/style"
)

// episodeItem is a row of the episode list.
type episodeItem struct {
	episode api.Episode
	watched bool
	current bool
	showID  bool
}

func (e episodeItem) Title() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d. ", e.episode.Number))
	if e.episode.Title != "" {
		sb.WriteString(e.episode.Title)
	} else {
		sb.WriteString(fmt.Sprintf("Episode %d", e.episode.Number))
	}

	if e.watched {
		sb.WriteString(" ")
		sb.WriteString(style.Fg(color.Watched)(icon.Get(icon.Watched)))
	}

	if e.current {
		sb.WriteString(" ")
		sb.WriteString(style.Fg(color.Accent)(icon.Get(icon.Play)))
	}

	return sb.String()
}

func (e episodeItem) Description() string {
	var parts []string

	if e.episode.AirDate != "" {
		parts = append(parts, e.episode.AirDate)
	}

	if e.showID {
		parts = append(parts, e.episode.ID)
	}

	return strings.Join(parts, " • ")
}

func (e episodeItem) FilterValue() string {
	return fmt.Sprintf("%d %s", e.episode.Number, e.episode.Title)
}

// fuzzyFilter ranks list items by fuzzy match, best first.
func fuzzyFilter(term string, targets []string) []list.Rank {
	ranks := fuzzy.RankFindNormalizedFold(term, targets)
	sort.Stable(ranks)

	result := make([]list.Rank, len(ranks))
	for i, r := range ranks {
		result[i] = list.Rank{Index: r.OriginalIndex}
	}

	return result
}
