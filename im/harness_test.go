package im

import (
	"testing"

	tui "github.com/radicle-dev/radicle-tui"
)

// harness draws a Root frame by frame the way the frontend loop does.
type harness[S, M any] struct {
	t      *testing.T
	root   *Root[S, M]
	buf    *tui.Buffer
	sender tui.Sender[M]
	rx     *tui.Receiver[M]
}

func newHarness[S, M any](t *testing.T, width, height int, fn func(ui *Ui[S, M])) *harness[S, M] {
	t.Helper()
	sender, rx := tui.NewChannel[M]()
	t.Cleanup(func() { rx.Close() })
	return &harness[S, M]{
		t:      t,
		root:   Show(fn),
		buf:    tui.NewBuffer(width, height),
		sender: sender,
		rx:     rx,
	}
}

// frame draws one frame with keys pending and returns its context after
// unclaimed input was dropped.
func (h *harness[S, M]) frame(state S, keys ...tui.KeyEvent) *tui.Context[S, M] {
	h.t.Helper()
	h.buf.Clear()
	ctx := tui.NewContext(state, h.sender, h.buf, keys...)
	h.root.Draw(ctx)
	ctx.EndFrame()
	return ctx
}

// messages drains every message sent so far.
func (h *harness[S, M]) messages() []M {
	var out []M
	for {
		m, ok := h.rx.TryRecv()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func (h *harness[S, M]) screen() string {
	return h.buf.StringTrimmed()
}

func key(k tui.Key) tui.KeyEvent {
	return tui.KeyEvent{Key: k}
}

func keys(k tui.Key, n int) []tui.KeyEvent {
	out := make([]tui.KeyEvent, n)
	for i := range out {
		out[i] = key(k)
	}
	return out
}

func runes(s string) []tui.KeyEvent {
	var out []tui.KeyEvent
	for _, r := range s {
		out = append(out, tui.Char(r))
	}
	return out
}
