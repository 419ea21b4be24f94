package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coinview/lazylist"
	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/market"
	"github.com/coinview/lazylist/internal/tui"
)

// Screen names accepted by the --screen flag.
const (
	screenNameWatch  = "watch"
	screenNameMovers = "movers"
)

// newListCmd creates the one-shot list command: render the chosen screen to
// stdout and exit.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print a screen once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			screen, _ := cmd.Flags().GetString("screen")
			if screen != screenNameWatch && screen != screenNameMovers {
				return fmt.Errorf("unknown screen %q (want %s or %s)", screen, screenNameWatch, screenNameMovers)
			}

			feed, err := market.NewFeed()
			if err != nil {
				return fmt.Errorf("initializing quote feed: %w", err)
			}

			forcePlain, _ := cmd.Flags().GetBool("plain")
			mode := tui.DetectOutputMode(forcePlain, true)

			return renderOnce(cmd, feed, configFromContext(cmd.Context()), screen, mode)
		},
	}

	cmd.Flags().String("screen", screenNameWatch, "screen to print (watch or movers)")
	cmd.Flags().Bool("plain", false, "force unstyled output")

	return cmd
}

// renderOnce loads a snapshot and writes the chosen screen's flattened node
// sequence to the command's stdout.
func renderOnce(cmd *cobra.Command, feed *market.Feed, cfg *config.Config, screen string, mode tui.OutputMode) error {
	snap, err := feed.Snapshot(cmd.Context(), cfg.Watchlist)
	if err != nil {
		return err
	}

	card := tui.CoinCard
	if mode == tui.OutputModePlain {
		card = tui.PlainCoinCard
	}

	var listCfg lazylist.ListConfig[market.Coin]
	if screen == screenNameMovers {
		listCfg = tui.MoversConfig(snap, cfg.Display, card, nil)
	} else {
		listCfg = tui.WatchConfig(snap, cfg.Display, card, nil)
	}

	return tui.RenderStatic(cmd.OutOrStdout(), listCfg, mode)
}
