package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coinview/lazylist"
	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/logging"
	"github.com/coinview/lazylist/internal/market"
)

// Default viewport dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	// chromeRows is the number of rows reserved for the status and help lines.
	chromeRows = 2
)

// ViewState tracks which view the watch model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while the snapshot loads.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the active list screen.
	ViewStateList
	// ViewStateError shows a load failure.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// screenID selects which list screen is active.
type screenID int

const (
	screenWatch screenID = iota
	screenMovers
)

// SnapshotLoadedMsg is sent when the market snapshot finished loading.
type SnapshotLoadedMsg struct {
	Snapshot market.Snapshot
}

// SnapshotErrMsg is sent when the snapshot load failed.
type SnapshotErrMsg struct {
	Err error
}

// WatchModel is the Bubble Tea model for the interactive watch screen. It
// loads a snapshot, builds the active screen's list config, and delegates
// scrolling to the virtualized list surface.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type WatchModel struct {
	state  ViewState
	screen screenID
	ctx    context.Context

	feed *market.Feed
	cfg  *config.Config
	snap market.Snapshot

	list    *lazylist.Model[market.Coin]
	spinner spinner.Model

	width  int
	height int

	// lastPick is the symbol most recently activated with Enter.
	lastPick string

	err error
}

// NewWatchModel creates the watch model in its loading state.
func NewWatchModel(ctx context.Context, feed *market.Feed, cfg *config.Config) WatchModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	return WatchModel{
		state:   ViewStateLoading,
		ctx:     ctx,
		feed:    feed,
		cfg:     cfg,
		spinner: sp,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

// Init starts the spinner and kicks off the snapshot load.
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSnapshot())
}

// loadSnapshot resolves the configured watchlist off the UI goroutine.
func (m WatchModel) loadSnapshot() tea.Cmd {
	ctx, feed, watchlist := m.ctx, m.feed, m.cfg.Watchlist
	return func() tea.Msg {
		snap, err := feed.Snapshot(ctx, watchlist)
		if err != nil {
			return SnapshotErrMsg{Err: err}
		}
		return SnapshotLoadedMsg{Snapshot: snap}
	}
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildList()
		return m, nil

	case SnapshotLoadedMsg:
		m.snap = msg.Snapshot
		m.state = ViewStateList
		m.rebuildList()
		return m, nil

	case SnapshotErrMsg:
		m.err = msg.Err
		m.state = ViewStateError
		return m, nil

	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes quit, screen toggle, refresh, and selection keys;
// everything else goes to the list surface.
func (m WatchModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.state = ViewStateQuitting
		return m, tea.Quit

	case "tab":
		if m.state == ViewStateList {
			if m.screen == screenWatch {
				m.screen = screenMovers
			} else {
				m.screen = screenWatch
			}
			m.rebuildList()
		}
		return m, nil

	case "r":
		if m.state == ViewStateList || m.state == ViewStateError {
			m.state = ViewStateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadSnapshot())
		}
		return m, nil
	}

	if m.state == ViewStateList && m.list != nil {
		if msg.Type == tea.KeyEnter {
			if coin := m.list.SelectedItem(); coin != nil {
				m.lastPick = coin.Symbol
			}
		}
		m.list.Update(msg)
	}
	return m, nil
}

// rebuildList rebuilds the list surface for the active screen and viewport.
func (m *WatchModel) rebuildList() {
	if m.state != ViewStateList {
		return
	}

	onSelect := func(coin market.Coin) {
		log := logging.FromContext(m.ctx)
		log.Info().
			Str("symbol", coin.Symbol).
			Float64("price", coin.Price).
			Msg("coin selected")
	}

	var cfg lazylist.ListConfig[market.Coin]
	if m.screen == screenMovers {
		cfg = MoversConfig(m.snap, m.cfg.Display, CoinCard, onSelect)
	} else {
		cfg = WatchConfig(m.snap, m.cfg.Display, CoinCard, onSelect)
	}

	height := m.height - chromeRows
	if height < 1 {
		height = 1
	}
	m.list = lazylist.NewModelWithStyles(cfg, height, m.width, ListStyles())
}

// View renders the current view.
func (m WatchModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" +
			SubtleStyle.Render("Press 'r' to retry, 'q' to quit")
	case ViewStateLoading:
		return m.spinner.View() + " Loading quotes..."
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the list surface plus status and help lines.
func (m WatchModel) renderListView() string {
	if m.list == nil {
		return ""
	}

	status := fmt.Sprintf("%d coins as of %s", len(m.snap.Coins), m.snap.At.Format("15:04:05"))
	if m.lastPick != "" {
		status += " | selected: " + m.lastPick
	}
	help := "tab: screen | enter: select | r: refresh | q: quit"

	return lipgloss.JoinVertical(lipgloss.Left,
		m.list.View(),
		SubtleStyle.Render(status),
		SubtleStyle.Render(help),
	)
}
