package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are rendered.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and redirects.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text without entering the
	// interactive alt screen.
	OutputModeStyled
	// OutputModeInteractive runs the full Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name for logs.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for the current terminal.
// forcePlain wins over everything; otherwise a non-TTY stdout gets plain
// output and nonInteractive downgrades a TTY to styled one-shot output.
func DetectOutputMode(forcePlain, nonInteractive bool) OutputMode {
	if forcePlain {
		return OutputModePlain
	}
	if !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if nonInteractive {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
