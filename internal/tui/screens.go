package tui

import (
	"github.com/coinview/lazylist"
	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/market"
)

// WatchConfig builds the watchlist screen: a "Coins" header followed by one
// card per coin, in watchlist order, rendered with card.
func WatchConfig(
	snap market.Snapshot,
	display config.DisplayConfig,
	card lazylist.RenderFunc[market.Coin],
	onSelect lazylist.SelectFunc[market.Coin],
) lazylist.ListConfig[market.Coin] {
	cfg := lazylist.New[market.Coin]().
		WithPadding(display.Padding).
		AddHeader("Coins").
		AddItems(snap.Coins, card).
		OnSelect(onSelect)
	if display.Dividers {
		cfg = cfg.WithDividers()
	}
	return cfg
}

// MoversConfig builds the movers screen from the accumulating builder style:
// gainer and loser sections capped at display.MoversCount.
//
// Headers are collected separately from sections, so both headings render
// back to back at the top, before any coin card.
func MoversConfig(
	snap market.Snapshot,
	display config.DisplayConfig,
	card lazylist.RenderFunc[market.Coin],
	onSelect lazylist.SelectFunc[market.Coin],
) lazylist.ListConfig[market.Coin] {
	b := lazylist.NewBuilder[market.Coin]().
		WithPadding(display.Padding).
		AddHeader("Top Gainers").
		AddItems(snap.Gainers(display.MoversCount), card).
		AddHeader("Top Losers").
		AddItems(snap.Losers(display.MoversCount), card).
		OnSelect(onSelect)
	if display.Dividers {
		b.WithDividers()
	}
	return b.Build()
}

// ListStyles maps the coinview styles onto the list surface.
func ListStyles() lazylist.Styles {
	return lazylist.Styles{
		Header:   HeaderStyle,
		Item:     lazylist.DefaultStyles().Item,
		Selected: SelectedStyle,
		Divider:  DividerStyle,
	}
}
