package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	// Point at a missing config so host configs never leak into tests.
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

// TestNewRootCmd tests command wiring.
func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd("1.2.3")

	assert.Equal(t, "coinview", root.Use)
	assert.Equal(t, "1.2.3", root.Version)

	names := make([]string, 0, 2)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "watch")
	assert.Contains(t, names, "list")
}

// TestListCommand tests the one-shot list output.
func TestListCommand(t *testing.T) {
	t.Run("watch screen", func(t *testing.T) {
		out, err := execute(t, "list", "--plain")
		require.NoError(t, err)
		assert.Contains(t, out, "Coins")
		assert.Contains(t, out, "BTC")
		assert.Contains(t, out, "Bitcoin")
	})

	t.Run("movers screen groups headers first", func(t *testing.T) {
		out, err := execute(t, "list", "--plain", "--screen", "movers")
		require.NoError(t, err)

		gainers := strings.Index(out, "Top Gainers")
		losers := strings.Index(out, "Top Losers")
		firstCard := strings.Index(out, "SOL")

		require.GreaterOrEqual(t, gainers, 0)
		assert.Greater(t, losers, gainers)
		assert.Greater(t, firstCard, losers)
	})

	t.Run("unknown screen is an error", func(t *testing.T) {
		_, err := execute(t, "list", "--screen", "bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown screen")
	})
}

// TestWatchCommand_NonInteractive tests that watch degrades to one-shot
// output when stdout is not a terminal.
func TestWatchCommand_NonInteractive(t *testing.T) {
	out, err := execute(t, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "Coins")
	assert.Contains(t, out, "BTC")
}
