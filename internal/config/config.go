// Package config loads the coinview YAML configuration and owns the global
// logger it configures.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory holding config and logs.
const configDirName = ".coinview"

// Config is the merged application configuration.
type Config struct {
	// Logging controls log level, format, and optional file output.
	Logging LoggingConfig `yaml:"logging"`

	// Watchlist is the ordered set of symbols shown on the watch screen.
	// Empty means every symbol the feed knows.
	Watchlist []string `yaml:"watchlist"`

	// Display tunes the list screens.
	Display DisplayConfig `yaml:"display"`
}

// LoggingConfig mirrors the `logging:` block of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DisplayConfig mirrors the `display:` block of the config file.
type DisplayConfig struct {
	// Padding is the outer padding of list screens, in cells.
	Padding int `yaml:"padding"`

	// Dividers draws a rule between consecutive coins.
	Dividers bool `yaml:"dividers"`

	// MoversCount caps the gainer and loser sections.
	MoversCount int `yaml:"movers_count"`
}

// Default returns the built-in configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			Padding:     1,
			Dividers:    true,
			MoversCount: 3,
		},
	}
}

// DefaultPath returns the per-user config file path, or empty when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, "config.yaml")
}

// Load reads the config file at path, merging it over Default. A missing
// file (or empty path) yields the defaults without error; a malformed file
// is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills fields the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.Display.MoversCount == 0 {
		c.Display.MoversCount = def.Display.MoversCount
	}
}
