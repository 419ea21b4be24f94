package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logFileHandle tracks the current log file for cleanup.
//
//nolint:gochecknoglobals // Tracks the global logger's file handle for proper cleanup
var logFileHandle *os.File

// logMu protects concurrent access to logFileHandle and Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger initializes the package-level Logger from the logging config.
// The level string is parsed into a zerolog level and defaults to InfoLevel
// on parse error. Format "json" writes raw JSON; anything else uses the
// human-readable console writer. When cfg.File is set, log lines are
// additionally appended there and the directory is created if missing.
func InitLogger(cfg LoggingConfig) error {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var writers []io.Writer
	if cfg.Format == "json" {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	// Close any previously opened log file to prevent file handle leaks.
	closeLogFileLocked()

	if cfg.File != "" {
		if dirErr := os.MkdirAll(filepath.Dir(cfg.File), 0750); dirErr != nil {
			return fmt.Errorf("creating log directory: %w", dirErr)
		}

		logFile, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if fileErr != nil {
			return fmt.Errorf("opening log file: %w", fileErr)
		}
		logFileHandle = logFile
		writers = append(writers, logFile)
	}

	Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return nil
}

// SetLogLevel sets the global Logger's level to the value parsed from level,
// falling back to InfoLevel when the string does not parse.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// CloseLogFile closes the current log file handle, if any, and resets the
// Logger to a console-only writer so subsequent logs are not written to a
// closed file.
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
}

// closeLogFileLocked closes the log file and resets the logger. Must be
// called with logMu held.
func closeLogFileLocked() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil

		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).
			Level(Logger.GetLevel()).
			With().
			Timestamp().
			Logger()
	}
}
