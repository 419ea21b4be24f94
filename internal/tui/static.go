package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/coinview/lazylist"
	"github.com/coinview/lazylist/internal/market"
)

// staticDividerWidth is the rule width for one-shot output.
const staticDividerWidth = 40

// RenderStatic writes the flattened node sequence once to w, without
// entering the interactive program. Node order is exactly the flattening
// order: headers first, then sections with their dividers.
func RenderStatic(w io.Writer, cfg lazylist.ListConfig[market.Coin], mode OutputMode) error {
	pad := strings.Repeat(" ", cfg.Padding())
	rule := strings.Repeat("─", staticDividerWidth)
	if mode == OutputModePlain {
		rule = strings.Repeat("-", staticDividerWidth)
	}

	for _, n := range lazylist.Flatten(cfg) {
		var line string
		switch n.Kind {
		case lazylist.NodeHeader:
			line = n.Content
			if mode == OutputModeStyled {
				line = HeaderStyle.Render(line)
			}
		case lazylist.NodeItem:
			line = n.Content
		case lazylist.NodeDivider:
			line = rule
			if mode == OutputModeStyled {
				line = DividerStyle.Render(line)
			}
		}

		if _, err := fmt.Fprintln(w, pad+line); err != nil {
			return fmt.Errorf("writing list output: %w", err)
		}
	}
	return nil
}
