package lazylist

// Builder is the mutable-accumulating counterpart to the fluent ListConfig
// methods. Each call mutates the builder in place and returns the same
// pointer for chaining; Build snapshots the accumulated state into an
// immutable ListConfig.
//
// A Builder is intended for single-goroutine construction. Build may be
// called more than once: internal state is not cleared, and configs built
// earlier never observe later mutations.
type Builder[T any] struct {
	padding  int
	headers  []string
	sections []Section[T]
	onSelect SelectFunc[T]
	dividers bool
}

// NewBuilder returns an empty accumulating builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithPadding records the outer padding. Last write wins.
func (b *Builder[T]) WithPadding(cells int) *Builder[T] {
	b.padding = cells
	return b
}

// AddHeader appends a section header.
func (b *Builder[T]) AddHeader(title string) *Builder[T] {
	b.headers = append(b.headers, title)
	return b
}

// AddItems appends a section binding items to render.
func (b *Builder[T]) AddItems(items []T, render RenderFunc[T]) *Builder[T] {
	b.sections = append(b.sections, Section[T]{Items: items, Render: render})
	return b
}

// OnSelect records the select handler. Last write wins.
func (b *Builder[T]) OnSelect(fn SelectFunc[T]) *Builder[T] {
	b.onSelect = fn
	return b
}

// WithDividers enables dividers between consecutive items of a section.
func (b *Builder[T]) WithDividers() *Builder[T] {
	b.dividers = true
	return b
}

// Build snapshots the accumulated state into an immutable ListConfig. The
// header and section slices are copied so the returned config is isolated
// from further builder mutation.
func (b *Builder[T]) Build() ListConfig[T] {
	cfg := ListConfig[T]{
		padding:  b.padding,
		onSelect: b.onSelect,
		dividers: b.dividers,
	}
	if len(b.headers) > 0 {
		cfg.headers = make([]string, len(b.headers))
		copy(cfg.headers, b.headers)
	}
	if len(b.sections) > 0 {
		cfg.sections = make([]Section[T], len(b.sections))
		copy(cfg.sections, b.sections)
	}
	return cfg
}
