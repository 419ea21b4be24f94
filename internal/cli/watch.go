package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/coinview/lazylist/internal/market"
	"github.com/coinview/lazylist/internal/tui"
)

// newWatchCmd creates the interactive watch command. On a non-TTY stdout it
// degrades to the one-shot list output instead of failing.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the configured coins interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			feed, err := market.NewFeed()
			if err != nil {
				return fmt.Errorf("initializing quote feed: %w", err)
			}

			mode := tui.DetectOutputMode(false, false)
			logger.Debug().Str("mode", mode.String()).Msg("output mode detected")

			if mode != tui.OutputModeInteractive {
				return renderOnce(cmd, feed, cfg, screenNameWatch, mode)
			}

			model := tui.NewWatchModel(ctx, feed, cfg)
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running watch screen: %w", err)
			}
			return nil
		},
	}
}
