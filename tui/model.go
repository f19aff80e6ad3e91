package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/internal/ui"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/layout"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/player"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/watch"
	"github.com/spf13/viper"
)

// model is the watch screen.
type model struct {
	ctx     context.Context
	session *watch.Session
	title   *prefs.Title
	player  player.Player
	open    func(string) error
	now     func() time.Time

	state  watch.State
	keymap *keymap

	// components
	spinnerC  spinner.Model
	episodesC list.Model
	helpC     help.Model
	notifier  *ui.Model

	rules         layout.Rules
	layout        layout.Layout
	width, height int

	// pendingPlay is the episode to hand to the player once its sources are in.
	pendingPlay string
	// playSeq tells apart the end of the current playback from replaced ones.
	playSeq     int
	lastCurrent string
}

func newModel(ctx context.Context, options *Options) *model {
	k := newKeymap()
	m := &model{
		ctx:      ctx,
		session:  options.Session,
		title:    prefs.ForTitle(options.Store, options.Session.State().Route.AnimeID),
		player:   options.Player,
		open:     options.Open,
		now:      time.Now,
		state:    options.Session.State(),
		keymap:   k,
		notifier: &ui.Model{},
		rules:    layout.DefaultRules(),
	}

	m.spinnerC = spinner.New()
	m.spinnerC.Spinner = spinner.Dot
	m.spinnerC.Style = style.New().Foreground(color.Accent)

	m.helpC = help.New()

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color.Accent).
		Foreground(color.Accent).
		Padding(0, 0, 0, 1)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(color.Text)

	m.episodesC = list.New(nil, delegate, 0, 0)
	m.episodesC.Title = "Episodes"
	m.episodesC.Styles.Title = style.Colored(color.Surface, color.Peach).Padding(0, 1)
	m.episodesC.KeyMap = k.forList()
	m.episodesC.Filter = fuzzyFilter
	m.episodesC.SetShowHelp(false)
	m.episodesC.SetShowPagination(false)
	m.episodesC.SetStatusBarItemName("episode", "episodes")

	return m
}

// changedMsg tells the model to take a fresh snapshot from the session.
type changedMsg struct{}

// errMsg carries a failed session action.
type errMsg struct{ err error }

// playbackEndedMsg reports that the player started as seq exited.
type playbackEndedMsg struct{ seq int }

// airingTickMsg refreshes the next airing countdown.
type airingTickMsg struct{}

func airingTick() tea.Cmd {
	return tea.Tick(time.Minute, func(time.Time) tea.Msg { return airingTickMsg{} })
}

// run executes a session action off the event loop.
func (m *model) run(action func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := action(ctx); err != nil {
			return errMsg{err}
		}
		return changedMsg{}
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		m.spinnerC.Tick,
		m.run(m.session.Mount),
		airingTick(),
	)
}

// resize splits the terminal and tells the session the width left for the player.
func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.layout = m.rules.Measure(width)
	m.session.Resize(m.layout.PlayerWidth)

	listHeight := height - headerHeight - helpHeight
	if m.layout.Stacked {
		listHeight -= playerHeight
	}

	frameX, frameY := style.Pane(0, false).GetFrameSize()
	m.episodesC.SetSize(max(m.layout.ListWidth-frameX, 0), max(listHeight-frameY, 0))
	m.helpC.Width = width
}

// sync takes the latest snapshot and rebuilds the list when needed.
func (m *model) sync() tea.Cmd {
	m.state = m.session.State()

	watched := make(map[string]bool)
	if episodes, err := m.title.Watched(); err != nil {
		log.Warnf("read watched episodes: %s", err)
	} else {
		for _, ep := range episodes {
			watched[ep.ID] = true
		}
	}

	showID := viper.GetBool(key.TUIShowEpisodeID)
	items := make([]list.Item, len(m.state.Episodes))
	for i, ep := range m.state.Episodes {
		items[i] = episodeItem{
			episode: ep,
			watched: watched[ep.ID],
			current: ep.ID == m.state.Current.ID,
			showID:  showID,
		}
	}

	cmd := m.episodesC.SetItems(items)

	if m.state.Current.ID != m.lastCurrent {
		m.lastCurrent = m.state.Current.ID
		if i := m.state.CurrentIndex(); i >= 0 && m.episodesC.FilterState() == list.Unfiltered {
			m.episodesC.Select(i)
		}
	}

	if m.pendingPlay != "" && m.readyFor(m.pendingPlay) {
		m.pendingPlay = ""
		cmd = tea.Batch(cmd, m.play())
	}

	return cmd
}

func (m *model) readyFor(episodeID string) bool {
	return m.state.Phase == watch.Ready &&
		!m.state.Loading &&
		m.state.Current.ID == episodeID &&
		m.state.EmbeddedURL != ""
}

// play hands the current embedded page to the player.
func (m *model) play() tea.Cmd {
	err := m.player.Play(player.Media{
		URL:   m.state.EmbeddedURL,
		Title: m.mediaTitle(),
	})
	if err != nil {
		log.Error(err)
		return ui.Notify("Playback failed: " + err.Error())
	}

	m.playSeq++
	cmds := []tea.Cmd{ui.Notify("Playing " + m.episodeLabel(m.state.Current))}

	if wait := m.player.Wait(); wait != nil {
		seq := m.playSeq
		cmds = append(cmds, func() tea.Msg {
			<-wait
			return playbackEndedMsg{seq: seq}
		})
	}

	return tea.Batch(cmds...)
}

// playbackEnded moves on to the next episode when autonext is enabled.
func (m *model) playbackEnded(seq int) tea.Cmd {
	if seq != m.playSeq || !viper.GetBool(key.PlayerAutoNext) || !m.state.HasNext() {
		return nil
	}

	m.pendingPlay = m.state.Episodes[m.state.CurrentIndex()+1].ID
	return m.run(m.session.EpisodeEnded)
}
