// Package market provides quote data for the coinview screens: coin quotes,
// point-in-time snapshots, and gainer/loser derivations.
package market

import (
	"sort"
	"time"
)

// Coin is one quoted asset.
type Coin struct {
	Symbol    string  `yaml:"symbol"`
	Name      string  `yaml:"name"`
	Price     float64 `yaml:"price"`
	Change24h float64 `yaml:"change24h"`
}

// Snapshot is a point-in-time view over a set of coins, in watchlist order.
type Snapshot struct {
	Coins []Coin
	At    time.Time
}

// Gainers returns up to n coins with a positive 24h change, sorted by change
// descending, ties broken by symbol.
func (s Snapshot) Gainers(n int) []Coin {
	return s.topBy(n, func(c Coin) bool { return c.Change24h > 0 }, func(a, b Coin) bool {
		if a.Change24h != b.Change24h {
			return a.Change24h > b.Change24h
		}
		return a.Symbol < b.Symbol
	})
}

// Losers returns up to n coins with a negative 24h change, sorted by change
// ascending, ties broken by symbol.
func (s Snapshot) Losers(n int) []Coin {
	return s.topBy(n, func(c Coin) bool { return c.Change24h < 0 }, func(a, b Coin) bool {
		if a.Change24h != b.Change24h {
			return a.Change24h < b.Change24h
		}
		return a.Symbol < b.Symbol
	})
}

// topBy filters and sorts a copy of the snapshot's coins, capped at n.
func (s Snapshot) topBy(n int, keep func(Coin) bool, less func(a, b Coin) bool) []Coin {
	out := make([]Coin, 0, len(s.Coins))
	for _, c := range s.Coins {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
