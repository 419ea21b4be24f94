package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/market"
)

func newTestWatchModel(t *testing.T) WatchModel {
	t.Helper()
	feed, err := market.NewFeed()
	require.NoError(t, err)
	return NewWatchModel(context.Background(), feed, config.Default())
}

// TestNewWatchModel tests initial state.
func TestNewWatchModel(t *testing.T) {
	m := newTestWatchModel(t)

	assert.Equal(t, ViewStateLoading, m.state)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading")
}

// TestWatchModel_SnapshotLoaded tests the loading -> list transition.
func TestWatchModel_SnapshotLoaded(t *testing.T) {
	m := newTestWatchModel(t)

	updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
	model, ok := updated.(WatchModel)
	require.True(t, ok)

	assert.Equal(t, ViewStateList, model.state)
	view := model.View()
	assert.Contains(t, view, "Coins")
	assert.Contains(t, view, "BTC")
	assert.Contains(t, view, "q: quit")
}

// TestWatchModel_SnapshotError tests the error view and retry hint.
func TestWatchModel_SnapshotError(t *testing.T) {
	m := newTestWatchModel(t)

	updated, _ := m.Update(SnapshotErrMsg{Err: market.ErrUnknownSymbol})
	model := updated.(WatchModel)

	assert.Equal(t, ViewStateError, model.state)
	assert.Contains(t, model.View(), "unknown symbol")
	assert.Contains(t, model.View(), "retry")
}

// TestWatchModel_TabTogglesScreens tests switching between the watchlist and
// movers screens.
func TestWatchModel_TabTogglesScreens(t *testing.T) {
	m := newTestWatchModel(t)
	updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
	model := updated.(WatchModel)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(WatchModel)
	assert.Contains(t, model.View(), "Top Gainers")
	assert.Contains(t, model.View(), "Top Losers")

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	model = updated.(WatchModel)
	assert.Contains(t, model.View(), "Coins")
}

// TestWatchModel_EnterRecordsSelection tests the status line selection.
func TestWatchModel_EnterRecordsSelection(t *testing.T) {
	m := newTestWatchModel(t)
	updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
	model := updated.(WatchModel)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(WatchModel)

	assert.Contains(t, model.View(), "selected: BTC")
}

// TestWatchModel_QuitKeys tests that quit keys stop the program.
func TestWatchModel_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := newTestWatchModel(t)
			updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
			model := updated.(WatchModel)

			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			updated, cmd := model.Update(msg)
			model = updated.(WatchModel)

			assert.Equal(t, ViewStateQuitting, model.state)
			assert.NotNil(t, cmd)
			assert.Empty(t, model.View())
		})
	}
}

// TestWatchModel_RefreshReloads tests the refresh key returns to loading.
func TestWatchModel_RefreshReloads(t *testing.T) {
	m := newTestWatchModel(t)
	updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
	model := updated.(WatchModel)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(WatchModel)

	assert.Equal(t, ViewStateLoading, model.state)
	assert.NotNil(t, cmd)
}

// TestWatchModel_Resize tests viewport updates flow to the list surface.
func TestWatchModel_Resize(t *testing.T) {
	m := newTestWatchModel(t)
	updated, _ := m.Update(SnapshotLoadedMsg{Snapshot: testSnapshot()})
	model := updated.(WatchModel)

	updated, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(WatchModel)

	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}

// TestDetectOutputMode tests mode precedence. Tests run without a TTY, so
// anything that is not forced plain still resolves to plain here.
func TestDetectOutputMode(t *testing.T) {
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, false))
	assert.Equal(t, OutputModePlain, DetectOutputMode(true, true))
	assert.Equal(t, OutputModePlain, DetectOutputMode(false, true))
}
