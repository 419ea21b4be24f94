// Package tui implements the coinview screens: lipgloss styling, the coin
// card, output-mode detection, and the interactive watch model.
package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles for all coinview output.
//
//nolint:gochecknoglobals // Styles are intentionally global, shared across all views
var (
	// HeaderStyle renders section headings ("Coins", "Top Gainers").
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

	// SymbolStyle renders the coin ticker symbol on a card.
	SymbolStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	// NameStyle renders the coin's full name.
	NameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// PriceStyle renders the quoted price.
	PriceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

	// GainStyle renders a positive 24h change.
	GainStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// LossStyle renders a negative 24h change.
	LossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// SelectedStyle highlights the card under the cursor.
	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))

	// DividerStyle renders the rule between consecutive cards.
	DividerStyle = lipgloss.NewStyle().Faint(true)

	// SubtleStyle renders status and help lines.
	SubtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// ErrorStyle renders load failures.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
