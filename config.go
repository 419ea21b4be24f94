package lazylist

// RenderFunc renders a single item into its display string. It must handle
// every element of the section it is bound to; faults raised inside it
// propagate untranslated to the caller of Flatten or the host render loop.
type RenderFunc[T any] func(item T) string

// SelectFunc is invoked with the item under the cursor when the user
// activates it. It runs synchronously on the UI goroutine.
type SelectFunc[T any] func(item T)

// Section binds a data slice to the render function for its elements. The
// pair is fixed at construction and flattened in append order.
type Section[T any] struct {
	Items  []T
	Render RenderFunc[T]
}

// ListConfig describes one list screen: padding, headers, item sections, an
// optional select handler, and whether dividers separate items.
//
// ListConfig is a value type with copy-on-write semantics: every
// configuration method returns a new ListConfig and never mutates its
// receiver, so intermediate configs can be shared and reused freely. The
// zero value is a valid empty list.
type ListConfig[T any] struct {
	padding  int
	headers  []string
	sections []Section[T]
	onSelect SelectFunc[T]
	dividers bool
}

// New returns an empty ListConfig ready for fluent configuration.
func New[T any]() ListConfig[T] {
	return ListConfig[T]{}
}

// WithPadding sets the uniform outer padding, in cells. Repeated calls
// overwrite; only the last value before flattening takes effect.
func (c ListConfig[T]) WithPadding(cells int) ListConfig[T] {
	c.padding = cells
	return c
}

// AddHeader appends a section header. Multiple calls accumulate in order.
//
// Headers and item sections are kept in two independent sequences: at
// flatten time every header is emitted before any section, regardless of
// how AddHeader and AddItems calls were interleaved.
func (c ListConfig[T]) AddHeader(title string) ListConfig[T] {
	c.headers = appendCopy(c.headers, title)
	return c
}

// AddItems appends a section binding items to render. Order of items is
// preserved; sections flatten in the order they were added.
func (c ListConfig[T]) AddItems(items []T, render RenderFunc[T]) ListConfig[T] {
	c.sections = appendCopy(c.sections, Section[T]{Items: items, Render: render})
	return c
}

// OnSelect sets the handler invoked when an item is activated. Only one
// handler is active; the last call wins. A handler with no sections is
// inert.
func (c ListConfig[T]) OnSelect(fn SelectFunc[T]) ListConfig[T] {
	c.onSelect = fn
	return c
}

// WithDividers enables a divider between consecutive items of each section.
// There is no way to turn dividers back off on a derived config.
func (c ListConfig[T]) WithDividers() ListConfig[T] {
	c.dividers = true
	return c
}

// Padding returns the configured outer padding.
func (c ListConfig[T]) Padding() int {
	return c.padding
}

// Headers returns a copy of the configured headers.
func (c ListConfig[T]) Headers() []string {
	out := make([]string, len(c.headers))
	copy(out, c.headers)
	return out
}

// Sections returns a copy of the configured sections. Section contents are
// shared with the config; treat them as read-only.
func (c ListConfig[T]) Sections() []Section[T] {
	out := make([]Section[T], len(c.sections))
	copy(out, c.sections)
	return out
}

// DividersEnabled reports whether dividers were enabled.
func (c ListConfig[T]) DividersEnabled() bool {
	return c.dividers
}

// appendCopy appends v to a fresh copy of s so configs derived from a shared
// prefix never observe each other's writes through a shared backing array.
func appendCopy[E any](s []E, v E) []E {
	out := make([]E, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}
