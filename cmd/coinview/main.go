// Command coinview is a coin watchlist TUI built on the lazylist DSL.
package main

import (
	"fmt"
	"os"

	"github.com/coinview/lazylist/internal/cli"
	"github.com/coinview/lazylist/internal/config"
	"github.com/coinview/lazylist/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code.
func run() int {
	defer config.CloseLogFile()

	rootCmd := cli.NewRootCmd(version.GetVersion())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
