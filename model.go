package lazylist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// defaultBufferSize is the number of extra rows rendered above/below the
// viewport for smooth scrolling.
const defaultBufferSize = 5

// halfViewportDivisor is used to calculate half the viewport height for
// centering the cursor.
const halfViewportDivisor = 2

// Styles controls how the model draws each node kind. Zero-value styles
// render plain text; DefaultStyles returns the standard look.
type Styles struct {
	Header   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Divider  lipgloss.Style
}

// DefaultStyles returns the default node styles: bold headers, a highlighted
// cursor row, and a faint divider rule.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
		Divider:  lipgloss.NewStyle().Faint(true),
	}
}

// Model is a virtualized Bubble Tea view over a flattened list. It renders
// only the visible window plus a small buffer, so large lists stay
// responsive regardless of total node count.
//
// The cursor only ever rests on selectable nodes; headers and dividers are
// skipped during navigation. Enter activates the node under the cursor.
type Model[T any] struct {
	nodes   []Node[T]
	padding int
	styles  Styles

	// cursor is the index of the selected node, or -1 when no node is
	// selectable.
	cursor int

	// visibleFrom/visibleTo delimit the visible node range (to exclusive).
	visibleFrom int
	visibleTo   int

	height     int
	width      int
	bufferSize int
}

// NewModel flattens cfg and wraps it in a virtualized view of the given
// viewport size with default styles.
func NewModel[T any](cfg ListConfig[T], height, width int) *Model[T] {
	return NewModelWithStyles(cfg, height, width, DefaultStyles())
}

// NewModelWithStyles is NewModel with caller-supplied styles.
func NewModelWithStyles[T any](cfg ListConfig[T], height, width int, styles Styles) *Model[T] {
	m := &Model[T]{
		nodes:      Flatten(cfg),
		padding:    cfg.padding,
		styles:     styles,
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}

	m.cursor = m.nextSelectable(-1, +1)
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and window resizes.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.updateVisibleRange()
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for navigation and activation.
//
//nolint:exhaustive // Key handling inherently requires multiple branches for different navigation keys.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.nodes) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.moveCursor(-1)

	case tea.KeyDown:
		m.moveCursor(+1)

	case tea.KeyPgUp:
		m.jumpCursor(-m.height)

	case tea.KeyPgDown:
		m.jumpCursor(m.height)

	case tea.KeyHome:
		m.setCursorNode(m.nextSelectable(-1, +1))

	case tea.KeyEnd:
		m.setCursorNode(m.nextSelectable(len(m.nodes), -1))

	case tea.KeyEnter:
		if m.cursor >= 0 {
			m.nodes[m.cursor].Activate()
		}

	case tea.KeyRunes:
		// vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.moveCursor(+1)
			case 'k':
				m.moveCursor(-1)
			}
		}

	default:
		// Ignore other key types (Ctrl combinations, function keys, etc.)
	}

	return m
}

// moveCursor advances the cursor to the next selectable node in the given
// direction, staying put at either end.
func (m *Model[T]) moveCursor(dir int) {
	if m.cursor < 0 {
		return
	}
	if next := m.nextSelectable(m.cursor, dir); next >= 0 {
		m.cursor = next
		m.updateVisibleRange()
	}
}

// jumpCursor moves the cursor roughly delta nodes, landing on the nearest
// selectable node in the jump direction.
func (m *Model[T]) jumpCursor(delta int) {
	if m.cursor < 0 {
		return
	}

	target := m.cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= len(m.nodes) {
		target = len(m.nodes) - 1
	}

	dir := 1
	if delta < 0 {
		dir = -1
	}
	next := m.nextSelectable(target-dir, dir)
	if next < 0 {
		// Past the last selectable node in that direction; clamp to the
		// outermost one instead.
		next = m.nextSelectable(target+dir, -dir)
	}
	if next >= 0 {
		m.cursor = next
		m.updateVisibleRange()
	}
}

// setCursorNode places the cursor on the given node index if valid.
func (m *Model[T]) setCursorNode(index int) {
	if index >= 0 && index < len(m.nodes) {
		m.cursor = index
		m.updateVisibleRange()
	}
}

// nextSelectable returns the index of the first selectable node strictly
// after from in direction dir (+1 or -1), or -1 when none exists.
func (m *Model[T]) nextSelectable(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(m.nodes); i += dir {
		if m.nodes[i].Kind == NodeItem {
			return i
		}
	}
	return -1
}

// updateVisibleRange recalculates the visible node range so the cursor stays
// centered where possible.
func (m *Model[T]) updateVisibleRange() {
	if len(m.nodes) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	anchor := m.cursor
	if anchor < 0 {
		anchor = 0
	}

	halfViewport := m.height / halfViewportDivisor

	idealFrom := anchor - halfViewport
	idealTo := anchor + halfViewport

	if idealFrom < 0 {
		idealFrom = 0
		idealTo = m.height
	}

	if idealTo > len(m.nodes) {
		idealTo = len(m.nodes)
		idealFrom = idealTo - m.height
		if idealFrom < 0 {
			idealFrom = 0
		}
	}

	m.visibleFrom = idealFrom
	m.visibleTo = idealTo
}

// View renders the visible node window with buffer rows.
func (m *Model[T]) View() string {
	if len(m.nodes) == 0 {
		return ""
	}

	renderFrom := m.visibleFrom - m.bufferSize
	if renderFrom < 0 {
		renderFrom = 0
	}

	renderTo := m.visibleTo + m.bufferSize
	if renderTo > len(m.nodes) {
		renderTo = len(m.nodes)
	}

	var sb strings.Builder
	for i := renderFrom; i < renderTo; i++ {
		if i > renderFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderNode(i))
	}

	content := sb.String()
	if m.padding > 0 {
		content = lipgloss.NewStyle().Padding(m.padding).Render(content)
	}
	return content
}

// renderNode draws a single node according to its kind and cursor state.
func (m *Model[T]) renderNode(i int) string {
	n := m.nodes[i]
	switch n.Kind {
	case NodeHeader:
		return m.styles.Header.Render(n.Content)
	case NodeDivider:
		return m.styles.Divider.Render(strings.Repeat("─", m.innerWidth()))
	case NodeItem:
		if i == m.cursor {
			return m.styles.Selected.Render(n.Content)
		}
		return m.styles.Item.Render(n.Content)
	default:
		return ""
	}
}

// innerWidth is the content width after outer padding on both sides.
func (m *Model[T]) innerWidth() int {
	w := m.width - 2*m.padding
	if w < 1 {
		w = 1
	}
	return w
}

// NodeCount returns the total number of flattened nodes.
func (m *Model[T]) NodeCount() int {
	return len(m.nodes)
}

// Cursor returns the node index under the cursor, or -1 when nothing is
// selectable.
func (m *Model[T]) Cursor() int {
	return m.cursor
}

// VisibleFrom returns the first visible node index (inclusive).
func (m *Model[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible node index (exclusive).
func (m *Model[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *Model[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *Model[T]) Width() int {
	return m.width
}

// SelectedItem returns the item under the cursor, or nil when the cursor is
// not on an item.
func (m *Model[T]) SelectedItem() *T {
	if m.cursor < 0 || m.cursor >= len(m.nodes) {
		return nil
	}
	item := m.nodes[m.cursor].Item
	return &item
}
