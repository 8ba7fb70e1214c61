// Package im is an immediate-mode widget engine. A view is a function that
// runs every frame, calls widget functions in order and draws the whole
// screen from the current state snapshot. Widgets keep scroll, focus and
// cursor positions in a States table keyed by their position in the call
// tree, so nothing UI-local leaks into application state.
//
//	view := im.Show(func(ui *im.Ui[State, Msg]) {
//		ui.Layout(im.Vertical(tui.Fill(1), tui.Length(1)), 0, func(ui *im.Ui[State, Msg]) {
//			ui.List(ui.State().Items, im.BordersAll)
//			ui.Shortcuts([]im.Shortcut{{Key: "q", Action: "quit"}}, '•')
//		})
//		ui.OnKey(tui.RuneOf('q'), func(tui.KeyEvent) { ui.Send(Quit{}) })
//	})
package im

import (
	"strconv"

	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// NoFocus is passed as a container's focus index when none of its children
// has focus.
const NoFocus = -1

// Response reports what a widget did with the frame's input.
type Response struct {
	// Changed is true when the widget's value or position moved.
	Changed bool
}

// Ui draws widgets into a container. Each container call hands its function
// a child Ui covering the container's area.
//
// Input resolution within a frame: a widget that has focus claims the keys
// it handles while it is drawn; handlers registered with OnKey and OnInput
// run after the view function returns, in registration order, on the input
// no widget claimed. The first matching handler claims an event. Whatever
// is left is dropped when the frame ends.
type Ui[S, M any] struct {
	ctx     *tui.Context[S, M]
	states  *States
	globals *[]global

	area     tui.Rect
	areas    []tui.Rect
	focus    int
	hasFocus bool
	count    int

	id  ID
	seq int
}

type global struct {
	match func(tui.KeyEvent) bool
	fn    func(tui.KeyEvent)
}

// Root is a View built from a view function. It owns the widget state table
// and must be used by a single frontend loop.
type Root[S, M any] struct {
	fn     func(ui *Ui[S, M])
	states *States
}

// Show returns a View that runs fn every frame.
func Show[S, M any](fn func(ui *Ui[S, M])) *Root[S, M] {
	return &Root[S, M]{fn: fn, states: NewStates()}
}

// States returns the persisted widget state.
func (r *Root[S, M]) States() *States {
	return r.states
}

// Draw runs the view function for one frame.
func (r *Root[S, M]) Draw(ctx *tui.Context[S, M]) {
	r.states.begin()

	var globals []global
	area := ctx.Area()
	ui := &Ui[S, M]{
		ctx:      ctx,
		states:   r.states,
		globals:  &globals,
		area:     area,
		areas:    Fill().Split(area),
		focus:    0,
		hasFocus: true,
	}
	r.fn(ui)

	for _, ke := range ctx.Pending() {
		for _, g := range globals {
			if !g.match(ke) {
				continue
			}
			if claimed, ok := ctx.Claim(func(k tui.KeyEvent) bool { return k == ke }); ok {
				g.fn(claimed)
			}
			break
		}
	}

	if n := r.states.end(); n > 0 {
		debug.Logger().Debug("widget state pruned", "frame", ctx.Frame(), "count", n)
	}
}

// State returns the frame's state snapshot.
func (ui *Ui[S, M]) State() S {
	return ui.ctx.State()
}

// Send queues a message for the store. It is applied after the frame.
func (ui *Ui[S, M]) Send(msg M) {
	ui.ctx.Send(msg)
}

// Context returns the frame context.
func (ui *Ui[S, M]) Context() *tui.Context[S, M] {
	return ui.ctx
}

// Theme returns the styles widgets draw with.
func (ui *Ui[S, M]) Theme() tui.Theme {
	return ui.ctx.Theme()
}

// Buffer returns the frame buffer, for drawing custom content into an area
// obtained from NextArea.
func (ui *Ui[S, M]) Buffer() *tui.Buffer {
	return ui.ctx.Buffer()
}

// Area returns the area of the container.
func (ui *Ui[S, M]) Area() tui.Rect {
	return ui.area
}

// HasFocus reports whether the container is on the focus path.
func (ui *Ui[S, M]) HasFocus() bool {
	return ui.hasFocus
}

// Count returns how many areas have been handed out.
func (ui *Ui[S, M]) Count() int {
	return ui.count
}

// NextArea hands out the next area of the layout and whether it has focus.
// Calls beyond the layout's length get an empty area.
func (ui *Ui[S, M]) NextArea() (tui.Rect, bool) {
	i := ui.count
	ui.count++
	if i >= len(ui.areas) {
		return tui.Rect{}, false
	}
	return ui.areas[i], ui.hasFocus && ui.focus == i
}

// IsAreaFocused reports whether the most recently handed out area has focus.
func (ui *Ui[S, M]) IsAreaFocused() bool {
	return ui.hasFocus && ui.count > 0 && ui.focus == ui.count-1
}

// Input claims the first pending key matching one of patterns if the most
// recently handed out area has focus.
func (ui *Ui[S, M]) Input(patterns ...tui.KeyPattern) (tui.KeyEvent, bool) {
	if !ui.IsAreaFocused() {
		return tui.KeyEvent{}, false
	}
	return ui.ctx.Claim(tui.Matcher(patterns...))
}

// OnKey registers fn for keys matching pattern that no widget claims.
// Handlers registered from a container without focus are ignored.
func (ui *Ui[S, M]) OnKey(pattern tui.KeyPattern, fn func(tui.KeyEvent)) {
	ui.OnInput(pattern.Matches, fn)
}

// OnInput is OnKey with an arbitrary predicate.
func (ui *Ui[S, M]) OnInput(match func(tui.KeyEvent) bool, fn func(tui.KeyEvent)) {
	if !ui.hasFocus {
		return
	}
	*ui.globals = append(*ui.globals, global{match: match, fn: fn})
}

// Group scopes the identity of the widgets drawn by fn under key. Widgets
// inside a group keep their state when widgets before the group come and
// go. Group does not consume an area.
func (ui *Ui[S, M]) Group(key string, fn func(ui *Ui[S, M])) {
	id, seq := ui.id, ui.seq
	ui.id, ui.seq = id.Child(key), 0
	defer func() { ui.id, ui.seq = id, seq+1 }()
	fn(ui)
}

// nextID returns the identity of the next widget in call order.
func (ui *Ui[S, M]) nextID() ID {
	id := ui.id.Child(strconv.Itoa(ui.seq))
	ui.seq++
	return id
}

// widget takes the next area and the state of the widget drawn into it.
func (ui *Ui[S, M]) widget(kind string) (area tui.Rect, focused bool, st *WidgetState, fresh bool) {
	area, focused = ui.NextArea()
	st, fresh = ui.states.use(ui.nextID(), kind)
	st.Focused = focused
	return area, focused, st, fresh
}

func (ui *Ui[S, M]) child(id ID, area tui.Rect, layout Layout, hasFocus bool, focus int) *Ui[S, M] {
	return &Ui[S, M]{
		ctx:      ui.ctx,
		states:   ui.states,
		globals:  ui.globals,
		area:     area,
		areas:    layout.Split(area),
		focus:    focus,
		hasFocus: hasFocus,
		id:       id,
	}
}

// Layout splits the next area with layout and draws fn's widgets into it.
// focus is the index of the child area holding focus, or NoFocus.
func (ui *Ui[S, M]) Layout(layout Layout, focus int, fn func(ui *Ui[S, M])) {
	area, focused := ui.NextArea()
	fn(ui.child(ui.nextID(), area, layout, focused, focus))
}

// Panes is a Layout whose focused child is kept across frames and moved
// with Tab and Shift-Tab while the panes have focus. It returns the index
// of the focused child.
func (ui *Ui[S, M]) Panes(layout Layout, fn func(ui *Ui[S, M])) (int, Response) {
	area, focused := ui.NextArea()
	id := ui.nextID()
	st, _ := ui.states.use(id, "panes")
	st.Focused = focused

	var resp Response
	if focused {
		last := max(layout.Len()-1, 0)
		for _, ke := range ui.ctx.ClaimAll(tui.Matcher(tui.KeyOf(tui.KeyTab), tui.KeyOf(tui.KeyBackTab))) {
			prev := st.Selected
			if ke.Key == tui.KeyTab {
				st.Selected = min(st.Selected+1, last)
			} else {
				st.Selected = max(st.Selected-1, 0)
			}
			resp.Changed = resp.Changed || prev != st.Selected
		}
	}
	st.Selected = min(max(st.Selected, 0), max(layout.Len()-1, 0))
	st.Width, st.Height = area.Width, area.Height

	fn(ui.child(id, area, layout, focused, st.Selected))
	return st.Selected, resp
}

// Popup clears a part of the container placed by layout, usually Popup,
// and draws fn's widgets into it with focus. Popup does not consume an
// area; widgets beneath should be drawn without focus while it is open.
func (ui *Ui[S, M]) Popup(layout Layout, fn func(ui *Ui[S, M])) {
	area := ui.area
	if areas := layout.Split(ui.area); len(areas) > 0 {
		area = areas[0]
	}
	ui.ctx.Buffer().ClearRect(area)
	fn(ui.child(ui.nextID(), area, Fill(), true, 0))
}
