package rm

import "github.com/radicle-dev/radicle-tui/internal/debug"

// Focusable is implemented by widgets that can receive keyboard focus.
type Focusable interface {
	// IsFocusable returns whether this widget can currently receive focus.
	// May return false for disabled or empty widgets.
	IsFocusable() bool
}

// FocusManager tracks focus over an ordered set of widgets.
// It does NOT automatically handle Tab navigation; the owner decides
// when focus moves by calling Next, Prev or SetFocus.
type FocusManager struct {
	items   []Focusable
	current int // -1 = none
}

// NewFocusManager creates an empty FocusManager.
func NewFocusManager() *FocusManager {
	return &FocusManager{current: -1}
}

// Register appends item. The first focusable item gets focus.
func (f *FocusManager) Register(item Focusable) {
	f.items = append(f.items, item)
	if f.current == -1 && item.IsFocusable() {
		f.current = len(f.items) - 1
	}
	debug.Log("FocusManager.Register: %T (focusable=%v) total=%d current=%d", item, item.IsFocusable(), len(f.items), f.current)
}

// Current returns the index of the focused item, or -1.
func (f *FocusManager) Current() int {
	return f.current
}

// Focused returns the focused item, or nil.
func (f *FocusManager) Focused() Focusable {
	if f.current < 0 || f.current >= len(f.items) {
		return nil
	}
	return f.items[f.current]
}

// IsFocused reports whether item holds focus.
func (f *FocusManager) IsFocused(item Focusable) bool {
	focused := f.Focused()
	return focused != nil && focused == item
}

// SetFocus moves focus to index i. Out of range or unfocusable items are
// ignored.
func (f *FocusManager) SetFocus(i int) {
	if i < 0 || i >= len(f.items) || !f.items[i].IsFocusable() {
		return
	}
	f.current = i
}

// Next moves focus to the next focusable item, wrapping at the end.
func (f *FocusManager) Next() {
	f.step(1)
}

// Prev moves focus to the previous focusable item, wrapping at the start.
func (f *FocusManager) Prev() {
	f.step(-1)
}

func (f *FocusManager) step(dir int) {
	n := len(f.items)
	if n == 0 {
		return
	}
	start := f.current
	if start < 0 && dir < 0 {
		start = 0
	}
	for i := 1; i <= n; i++ {
		idx := ((start+dir*i)%n + n) % n
		if f.items[idx].IsFocusable() {
			f.current = idx
			return
		}
	}
	// No focusable items found
	f.current = -1
}

// Revalidate moves focus off an item that stopped being focusable.
func (f *FocusManager) Revalidate() {
	if focused := f.Focused(); focused != nil && focused.IsFocusable() {
		return
	}
	prev := f.current
	f.current = -1
	for i, item := range f.items {
		if item.IsFocusable() {
			f.current = i
			break
		}
	}
	if prev != f.current {
		debug.Logger().Debug("focus moved", "from", prev, "to", f.current)
	}
}
