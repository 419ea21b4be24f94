package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinview/lazylist"
	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/market"
)

func testSnapshot() market.Snapshot {
	return market.Snapshot{Coins: []market.Coin{
		{Symbol: "BTC", Name: "Bitcoin", Price: 67241.18, Change24h: 2.41},
		{Symbol: "ETH", Name: "Ethereum", Price: 3489.52, Change24h: 1.08},
		{Symbol: "DOGE", Name: "Dogecoin", Price: 0.1284, Change24h: -4.12},
	}}
}

// TestWatchConfig tests the watchlist screen layout.
func TestWatchConfig(t *testing.T) {
	display := config.DisplayConfig{Padding: 2, Dividers: true, MoversCount: 3}

	cfg := WatchConfig(testSnapshot(), display, PlainCoinCard, nil)
	nodes := lazylist.Flatten(cfg)

	require.Len(t, nodes, 6) // header + 3 cards + 2 dividers
	assert.Equal(t, lazylist.NodeHeader, nodes[0].Kind)
	assert.Equal(t, "Coins", nodes[0].Content)
	assert.Equal(t, 2, cfg.Padding())
	assert.True(t, cfg.DividersEnabled())
}

// TestWatchConfig_NoDividers tests the divider flag stays off when disabled.
func TestWatchConfig_NoDividers(t *testing.T) {
	display := config.DisplayConfig{MoversCount: 3}

	cfg := WatchConfig(testSnapshot(), display, PlainCoinCard, nil)

	assert.False(t, cfg.DividersEnabled())
	assert.Len(t, lazylist.Flatten(cfg), 4)
}

// TestMoversConfig tests that both headings render before any card: headers
// and sections live in separate sequences, so the two AddHeader calls group
// at the top even though the call sites interleave them with AddItems.
func TestMoversConfig(t *testing.T) {
	display := config.DisplayConfig{Dividers: false, MoversCount: 2}

	cfg := MoversConfig(testSnapshot(), display, PlainCoinCard, nil)
	nodes := lazylist.Flatten(cfg)

	require.Len(t, nodes, 5) // 2 headers, 2 gainers, 1 loser
	assert.Equal(t, "Top Gainers", nodes[0].Content)
	assert.Equal(t, "Top Losers", nodes[1].Content)
	assert.True(t, strings.Contains(nodes[2].Content, "BTC"))
	assert.True(t, strings.Contains(nodes[3].Content, "ETH"))
	assert.True(t, strings.Contains(nodes[4].Content, "DOGE"))
}

// TestMoversConfig_SelectHandlerBound tests the handler reaches item nodes.
func TestMoversConfig_SelectHandlerBound(t *testing.T) {
	display := config.DisplayConfig{MoversCount: 3}
	var picked string

	cfg := MoversConfig(testSnapshot(), display, PlainCoinCard, func(c market.Coin) { picked = c.Symbol })
	nodes := lazylist.Flatten(cfg)

	for _, n := range nodes {
		if n.Kind == lazylist.NodeItem {
			assert.True(t, n.Selectable())
		}
	}
	nodes[2].Activate()
	assert.Equal(t, "BTC", picked)
}
