package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/miru-cli/miru/internal/ui"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/util"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := m.notifier.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case changedMsg:
		cmds = append(cmds, m.sync())
	case errMsg:
		m.pendingPlay = ""
		cmds = append(cmds, m.sync(), ui.Notify(msg.err.Error()))
	case playbackEndedMsg:
		cmds = append(cmds, m.playbackEnded(msg.seq))
	case airingTickMsg:
		cmds = append(cmds, airingTick())
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinnerC, cmd = m.spinnerC.Update(msg)
		cmds = append(cmds, cmd)
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keymap.forceQuit) {
		return tea.Quit
	}

	// the filter input owns the keyboard while it is open
	if m.episodesC.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.episodesC, cmd = m.episodesC.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keymap.quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.play):
		return m.selectHighlighted()
	case key.Matches(msg, m.keymap.next):
		return m.run(m.session.NextEpisode)
	case key.Matches(msg, m.keymap.previous):
		return m.run(m.session.PreviousEpisode)
	case key.Matches(msg, m.keymap.language):
		return m.toggleLanguage()
	case key.Matches(msg, m.keymap.source):
		return m.toggleSource()
	case key.Matches(msg, m.keymap.openURL):
		return m.openInBrowser(m.state.EmbeddedURL, "Nothing to open yet")
	case key.Matches(msg, m.keymap.trailer):
		if m.state.Info == nil || m.state.Info.Trailer == nil {
			return ui.Notify("No trailer")
		}
		return m.openInBrowser(m.state.Info.Trailer.EmbedURL(), "No trailer")
	case key.Matches(msg, m.keymap.showHelp):
		m.helpC.ShowAll = !m.helpC.ShowAll
		return nil
	}

	var cmd tea.Cmd
	m.episodesC, cmd = m.episodesC.Update(msg)
	return cmd
}

// selectHighlighted plays the highlighted episode, loading it first when it is not current.
func (m *model) selectHighlighted() tea.Cmd {
	item, ok := m.episodesC.SelectedItem().(episodeItem)
	if !ok {
		return nil
	}

	if m.episodesC.FilterState() == list.FilterApplied {
		m.episodesC.ResetFilter()
	}

	id := item.episode.ID
	if m.readyFor(id) {
		return m.play()
	}

	m.pendingPlay = id
	return m.run(func(ctx context.Context) error {
		return m.session.SelectEpisode(ctx, id)
	})
}

func (m *model) toggleLanguage() tea.Cmd {
	language := m.state.Language.Toggle()
	if err := m.session.ChangeLanguage(language); err != nil {
		log.Error(err)
		return ui.Notify(err.Error())
	}

	return tea.Batch(m.sync(), ui.Notify("Language changed to "+util.Capitalize(string(language))))
}

func (m *model) toggleSource() tea.Cmd {
	// m.state may lag behind a change still being delivered
	sourceType := m.session.State().SourceType.Toggle()
	return tea.Batch(
		ui.Notify("Source changed to "+util.Capitalize(string(sourceType))),
		m.run(func(ctx context.Context) error {
			return m.session.ChangeSourceType(ctx, sourceType)
		}),
	)
}

func (m *model) openInBrowser(target, missing string) tea.Cmd {
	if target == "" {
		return ui.Notify(missing)
	}

	if err := m.open(target); err != nil {
		log.Error(err)
		return ui.Notify("Could not open the browser")
	}

	return nil
}
