package market

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/coinview/lazylist/internal/logging"
)

//go:embed quotes.yaml
var quotesFixture []byte

// ErrUnknownSymbol is returned when a watchlist symbol has no quote.
var ErrUnknownSymbol = fmt.Errorf("unknown symbol")

// Feed serves quotes from the bundled fixture data. Quotes resolve per
// symbol, concurrently, so a Snapshot over a watchlist behaves like a
// fan-out to independent sources.
type Feed struct {
	quotes map[string]Coin
	order  []string
}

// quotesFile is the on-disk shape of the bundled fixture.
type quotesFile struct {
	Coins []Coin `yaml:"coins"`
}

// NewFeed parses the bundled quote fixture into a Feed.
func NewFeed() (*Feed, error) {
	return newFeedFromYAML(quotesFixture)
}

func newFeedFromYAML(data []byte) (*Feed, error) {
	var file quotesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing quote fixture: %w", err)
	}

	f := &Feed{
		quotes: make(map[string]Coin, len(file.Coins)),
		order:  make([]string, 0, len(file.Coins)),
	}
	for _, c := range file.Coins {
		f.quotes[c.Symbol] = c
		f.order = append(f.order, c.Symbol)
	}
	return f, nil
}

// Symbols returns every symbol the feed can quote, in fixture order.
func (f *Feed) Symbols() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Quote returns the current quote for one symbol.
func (f *Feed) Quote(ctx context.Context, symbol string) (Coin, error) {
	select {
	case <-ctx.Done():
		return Coin{}, ctx.Err()
	default:
	}

	coin, ok := f.quotes[symbol]
	if !ok {
		return Coin{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	return coin, nil
}

// Snapshot resolves every watchlist symbol concurrently and returns the
// quotes in watchlist order. An empty watchlist means every known symbol.
// Any unresolvable symbol fails the whole snapshot.
func (f *Feed) Snapshot(ctx context.Context, watchlist []string) (Snapshot, error) {
	if len(watchlist) == 0 {
		watchlist = f.Symbols()
	}

	log := logging.FromContext(ctx)
	log.Debug().Int("symbols", len(watchlist)).Msg("loading market snapshot")

	coins := make([]Coin, len(watchlist))
	g, ctx := errgroup.WithContext(ctx)
	for i, symbol := range watchlist {
		g.Go(func() error {
			coin, err := f.Quote(ctx, symbol)
			if err != nil {
				return err
			}
			coins[i] = coin
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("loading snapshot: %w", err)
	}

	return Snapshot{Coins: coins, At: time.Now()}, nil
}
