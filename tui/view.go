package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/miru-cli/miru/watch"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Rows reserved outside of the list.
const (
	headerHeight = 4
	playerHeight = 9
	helpHeight   = 2
)

const descriptionLines = 3

var paddingStyle = lipgloss.NewStyle().Padding(0, 1)

func (m *model) View() string {
	output := lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), m.viewBody(), paddingStyle.Render(m.helpC.View(m.keymap)))
	return m.notifier.View(output)
}

func (m *model) viewBody() string {
	// a title without episodes gets one pane across the whole width
	if m.state.NoEpisodes {
		return style.Pane(max(m.width-2, 0), true).Render(m.viewPlayer())
	}

	playerPane := style.Pane(max(m.layout.PlayerWidth-2, 0), !m.episodesFocused()).Render(m.viewPlayer())
	listPane := style.Pane(max(m.layout.ListWidth-2, 0), m.episodesFocused()).Render(m.episodesC.View())

	if m.layout.Stacked {
		return lipgloss.JoinVertical(lipgloss.Left, playerPane, listPane)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, playerPane, strings.Repeat(" ", m.rules.Gap), listPane)
}

func (m *model) episodesFocused() bool {
	return m.episodesC.FilterState() != list.Unfiltered
}

// displayName prefers the fetched title over the one in the route.
func (m *model) displayName() string {
	if m.state.Info != nil {
		if display := m.state.Info.Title.Display(); display != "" {
			return display
		}
	}
	return m.state.Route.AnimeTitle
}

func (m *model) mediaTitle() string {
	name := m.displayName()
	if name == "" {
		return m.episodeLabel(m.state.Current)
	}

	return name + " - " + m.episodeLabel(m.state.Current)
}

func (m *model) episodeLabel(ep api.Episode) string {
	if ep.Title != "" {
		return fmt.Sprintf("Episode %d: %s", ep.Number, ep.Title)
	}
	return fmt.Sprintf("Episode %d", ep.Number)
}

func (m *model) viewHeader() string {
	name := m.displayName()
	if name == "" {
		name = m.state.Route.AnimeID
	}

	badges := []string{style.Title(name)}

	if m.state.Info != nil && m.state.Info.Status != "" {
		badges = append(badges, style.Faint(util.Capitalize(strings.ToLower(m.state.Info.Status))))
	}

	if m.state.Language == prefs.LanguageDub {
		badges = append(badges, style.Tag(color.Surface, color.Dub)(icon.Get(icon.Dub)+" dub"))
	} else {
		badges = append(badges, style.Tag(color.Surface, color.Sub)(icon.Get(icon.Sub)+" sub"))
	}

	badges = append(badges, style.Tag(color.Text, color.Surface)(string(m.state.SourceType)))

	if airing, ok := m.state.NextAiring(m.now()).Get(); ok {
		badges = append(badges, style.Fg(color.Airing)(fmt.Sprintf(
			"%s Episode %d in %s",
			icon.Get(icon.Bell),
			airing.Episode,
			util.Countdown(airing.Remaining),
		)))
	}

	line := strings.Join(badges, " ")
	if m.width > 0 {
		line = truncate.StringWithTail(line, uint(m.width), "…")
	}
	lines := []string{line}

	if m.state.Info != nil && m.state.Info.Description != "" {
		lines = append(lines, m.viewDescription(m.state.Info.Description))
	}

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) viewDescription(description string) string {
	width := m.width - 2
	if width <= 0 {
		return ""
	}

	wrapped := strings.Split(wordwrap.String(description, width), "\n")
	if len(wrapped) > descriptionLines {
		wrapped = wrapped[:descriptionLines]
		wrapped[descriptionLines-1] = truncate.StringWithTail(wrapped[descriptionLines-1], uint(width-1), "") + "…"
	}

	return style.Faint(strings.Join(wrapped, "\n"))
}

func (m *model) viewPlayer() string {
	switch {
	case m.state.NoEpisodes:
		return "\n" + style.Faint("No episodes found") + "\n"
	case m.state.Loading:
		return "\n" + m.spinnerC.View() + " " + m.loadingLabel() + "\n"
	case m.state.Phase != watch.Ready && m.state.EmbeddedURL == "":
		return "\n" + style.Faint("Select an episode") + "\n"
	}

	lines := []string{
		style.Bold(m.episodeLabel(m.state.Current)),
		"",
	}

	if m.state.EmbeddedURL != "" {
		lines = append(lines,
			style.Fg(color.Sky)(icon.Get(icon.Link)+" "+m.state.EmbeddedURL),
			"",
			style.Faint(icon.Get(icon.Play)+" press enter to play"),
		)
	} else {
		lines = append(lines, style.Faint("No server available"))
	}

	if m.state.LanguageChanged {
		lines = append(lines, style.Faint("language: "+string(m.state.Language)))
	}

	if width := m.layout.PlayerWidth - 4; width > 0 {
		for i, line := range lines {
			lines[i] = truncate.StringWithTail(line, uint(width), "…")
		}
	}

	return strings.Join(lines, "\n")
}

func (m *model) loadingLabel() string {
	switch m.state.Phase {
	case watch.LoadingTitle:
		return "Loading title"
	case watch.ResolvingEpisode, watch.LoadingEpisode:
		return "Loading episode"
	case watch.LoadingSources:
		return "Loading sources"
	default:
		return "Loading"
	}
}
