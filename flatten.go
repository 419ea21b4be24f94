package lazylist

// Flatten converts a config into the ordered node sequence the host surface
// renders. The order is fixed:
//
//  1. every header, in append order, as one header node each;
//  2. every section, in append order; within a section every item in slice
//     order, with a divider node between consecutive items when dividers are
//     enabled (never after a section's last item).
//
// All headers precede all sections even when AddHeader and AddItems calls
// were interleaved at the call site; the two sequences are stored and
// flattened independently.
//
// Flatten is pure: it performs no validation, sorting, filtering, or
// deduplication, returns no error, and may be called any number of times
// over the same config with identical results. An empty config yields an
// empty slice.
func Flatten[T any](cfg ListConfig[T]) []Node[T] {
	nodes := make([]Node[T], 0, flatLen(cfg))

	for _, title := range cfg.headers {
		nodes = append(nodes, Node[T]{Kind: NodeHeader, Content: title})
	}

	for _, sec := range cfg.sections {
		for i, item := range sec.Items {
			nodes = append(nodes, Node[T]{
				Kind:     NodeItem,
				Content:  sec.Render(item),
				Item:     item,
				onSelect: cfg.onSelect,
			})
			if cfg.dividers && i < len(sec.Items)-1 {
				nodes = append(nodes, Node[T]{Kind: NodeDivider})
			}
		}
	}

	return nodes
}

// flatLen computes the exact flattened length so Flatten allocates once.
func flatLen[T any](cfg ListConfig[T]) int {
	n := len(cfg.headers)
	for _, sec := range cfg.sections {
		n += len(sec.Items)
		if cfg.dividers && len(sec.Items) > 1 {
			n += len(sec.Items) - 1
		}
	}
	return n
}
