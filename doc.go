// Package lazylist provides a fluent builder DSL for composing scrollable
// list screens on top of Bubble Tea.
//
// A list is described declaratively as an immutable ListConfig: outer
// padding, a sequence of section headers, a sequence of item sections (each
// binding a data slice to its render function), an optional select handler,
// and a divider flag. Key features:
//   - Copy-on-write fluent configuration: every method returns a new value
//   - A mutable accumulating Builder producing identical output
//   - Deterministic flattening into an ordered node sequence
//   - A virtualized Bubble Tea model that renders only the visible window
//
// A ListConfig is generic over a single item type, so section data, render
// functions, and the select handler are checked at compile time. Rendering,
// scrolling, and input dispatch are delegated to Bubble Tea; this package
// only decides what nodes exist and in which order.
package lazylist
