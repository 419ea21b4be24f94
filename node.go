package lazylist

// NodeKind discriminates the node variants produced by flattening.
type NodeKind int

const (
	// NodeHeader is a section heading line.
	NodeHeader NodeKind = iota
	// NodeItem is a rendered data item, selectable when a handler is bound.
	NodeItem
	// NodeDivider separates two consecutive items of the same section.
	NodeDivider
)

// String returns the node kind name for logs and test failure messages.
func (k NodeKind) String() string {
	switch k {
	case NodeHeader:
		return "header"
	case NodeItem:
		return "item"
	case NodeDivider:
		return "divider"
	default:
		return "unknown"
	}
}

// Node is one entry of a flattened list: an abstract description of a line
// the host surface will draw. Header nodes carry the raw title, item nodes
// carry the section render output plus the originating item, divider nodes
// carry nothing.
type Node[T any] struct {
	Kind    NodeKind
	Content string
	Item    T

	onSelect SelectFunc[T]
}

// Selectable reports whether activating this node invokes a handler.
// Only item nodes of a config with a select handler are selectable.
func (n Node[T]) Selectable() bool {
	return n.Kind == NodeItem && n.onSelect != nil
}

// Activate invokes the bound select handler with the node's item. It is a
// no-op on headers, dividers, and configs without a handler.
func (n Node[T]) Activate() {
	if n.Selectable() {
		n.onSelect(n.Item)
	}
}
