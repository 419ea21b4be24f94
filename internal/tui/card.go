package tui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/coinview/lazylist/internal/market"
)

// Card layout constants.
const (
	symbolColWidth = 6
	nameColWidth   = 12
	priceColWidth  = 14
	// subUnitThreshold is the price below which four decimals are shown.
	subUnitThreshold = 1.0
)

// pricePrinter formats prices with locale-aware digit grouping.
//
//nolint:gochecknoglobals // Shared printer, printers are safe for concurrent use
var pricePrinter = message.NewPrinter(language.English)

// CoinCard renders one coin as a styled card line: symbol, name, grouped
// price, and signed colored 24h change.
func CoinCard(c market.Coin) string {
	symbol := SymbolStyle.Render(fmt.Sprintf("%-*s", symbolColWidth, c.Symbol))
	name := NameStyle.Render(fmt.Sprintf("%-*s", nameColWidth, c.Name))
	price := PriceStyle.Render(fmt.Sprintf("%*s", priceColWidth, formatPrice(c.Price)))

	change := fmt.Sprintf("%+.2f%%", c.Change24h)
	if c.Change24h < 0 {
		change = LossStyle.Render(change)
	} else {
		change = GainStyle.Render(change)
	}

	return symbol + " " + name + " " + price + "  " + change
}

// PlainCoinCard renders the same card without any styling, for non-TTY
// output.
func PlainCoinCard(c market.Coin) string {
	return fmt.Sprintf("%-*s %-*s %*s  %+.2f%%",
		symbolColWidth, c.Symbol,
		nameColWidth, c.Name,
		priceColWidth, formatPrice(c.Price),
		c.Change24h)
}

// formatPrice renders a dollar price with grouping, using four decimals for
// sub-unit prices so small-cap quotes stay meaningful.
func formatPrice(price float64) string {
	if price < subUnitThreshold {
		return pricePrinter.Sprintf("$%.4f", price)
	}
	return pricePrinter.Sprintf("$%.2f", price)
}
