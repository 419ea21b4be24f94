// Package cli wires the coinview cobra commands: configuration loading,
// logger setup, and the watch and list subcommands.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/internal/logging"
)

// logger is the package-level logger for CLI operations.
//
//nolint:gochecknoglobals // Required for zerolog context integration
var logger zerolog.Logger

// configKey is the context key carrying the loaded configuration.
type configKey struct{}

// NewRootCmd creates the root cobra command for the coinview CLI. It loads
// the YAML config, initializes logging, and attaches both plus a trace ID to
// the command context before any subcommand runs.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "coinview",
		Short:   "Coin watchlist TUI",
		Long:    "coinview: a declarative coin watchlist built on the lazylist DSL",
		Version: ver,
		Example: `  coinview watch
  coinview list --screen movers
  coinview list --plain | head`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "config file path (default ~/.coinview/config.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging to the console")

	cmd.AddCommand(newWatchCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

// setup loads configuration, initializes the global logger, and stores both
// on the command context.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	if err := config.InitLogger(loggingCfg); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logger = logging.ComponentLogger(config.GetLogger(), "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().
		Str("command", cmd.Name()).
		Str("trace_id", traceID).
		Msg("command started")

	return nil
}

// configFromContext returns the configuration stored by setup, or the
// defaults when the command ran without it (tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
