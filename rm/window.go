package rm

import (
	tui "github.com/radicle-dev/radicle-tui"
	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// Window is the root of a retained-mode application and implements
// tui.View. It holds pages keyed by id and shows the one selected by the
// current state. Keys go to the shown page first; keys it does not consume
// go to the window's OnKey callback. Keys neither consumes stay unclaimed.
type Window[S, M any] struct {
	pages   map[string]Widget[S, M]
	current func(S) string
	onKey   func(ke tui.KeyEvent, state S) (M, bool)
	shown   string
}

// NewWindow creates a window. current picks the page id from the state; a
// nil current always shows the page with the empty id.
func NewWindow[S, M any](current func(S) string) *Window[S, M] {
	return &Window[S, M]{
		pages:   make(map[string]Widget[S, M]),
		current: current,
	}
}

// Page registers page under id.
func (w *Window[S, M]) Page(id string, page Widget[S, M]) *Window[S, M] {
	w.pages[id] = page
	return w
}

// OnKey sets the callback for keys the page does not consume.
func (w *Window[S, M]) OnKey(fn func(ke tui.KeyEvent, state S) (M, bool)) *Window[S, M] {
	w.onKey = fn
	return w
}

// Shown returns the id of the page drawn on the last frame.
func (w *Window[S, M]) Shown() string {
	return w.shown
}

func (w *Window[S, M]) Draw(ctx *tui.Context[S, M]) {
	state := ctx.State()
	id := ""
	if w.current != nil {
		id = w.current(state)
	}
	if id != w.shown {
		debug.Logger().Debug("page shown", "id", id, "previous", w.shown)
		w.shown = id
	}
	page, ok := w.pages[id]
	if !ok {
		debug.Logger().Warn("no page", "id", id)
		return
	}

	page.Update(state)
	for _, ke := range ctx.Pending() {
		handled := page.HandleKey(ke, ctx.Send)
		if !handled && w.onKey != nil {
			var msg M
			if msg, handled = w.onKey(ke, state); handled {
				ctx.Send(msg)
			}
		}
		if handled {
			ctx.Claim(func(k tui.KeyEvent) bool { return k == ke })
		}
	}

	page.Render(ctx.Buffer(), RenderProps{
		Area:  ctx.Area(),
		Focus: true,
		Theme: ctx.Theme(),
	})
}
