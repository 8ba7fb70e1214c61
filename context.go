package tui

import (
	"errors"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// Context is handed to the root view once per frame. It carries the state
// snapshot taken at frame start, the handle for sending messages to the
// store, the frame buffer and the input that arrived since the last frame.
//
// Messages sent during a frame are applied after it; the state seen through
// State never changes while the frame is drawn.
type Context[S, M any] struct {
	state    S
	sender   Sender[M]
	buf      *Buffer
	area     Rect
	viewport Viewport
	theme    Theme
	frame    uint64

	inputs    []KeyEvent
	discarded int
}

// NewContext creates a context drawing into buf with the given pending
// input. Apps create one per frame; tests use it to drive views directly.
func NewContext[S, M any](state S, sender Sender[M], buf *Buffer, inputs ...KeyEvent) *Context[S, M] {
	return &Context[S, M]{
		state:    state,
		sender:   sender,
		buf:      buf,
		area:     buf.Rect(),
		viewport: Fullscreen(),
		theme:    NewTheme(true),
		inputs:   inputs,
	}
}

// State returns the frame's state snapshot.
func (c *Context[S, M]) State() S {
	return c.state
}

// Send queues msg for the store. Sending after shutdown has begun is
// harmless and only logged.
func (c *Context[S, M]) Send(msg M) {
	if err := c.sender.Send(msg); err != nil {
		if errors.Is(err, ErrClosed) {
			debug.Logger().Debug("message dropped", "frame", c.frame, "err", err)
			return
		}
		debug.Logger().Warn("send failed", "frame", c.frame, "err", err)
	}
}

// Sender returns the raw message handle, e.g. for background work that
// outlives the frame.
func (c *Context[S, M]) Sender() Sender[M] {
	return c.sender
}

// Buffer returns the frame buffer.
func (c *Context[S, M]) Buffer() *Buffer {
	return c.buf
}

// Area returns the drawable region of the buffer.
func (c *Context[S, M]) Area() Rect {
	return c.area
}

// Viewport returns the viewport the app runs in.
func (c *Context[S, M]) Viewport() Viewport {
	return c.viewport
}

// Theme returns the theme for this run.
func (c *Context[S, M]) Theme() Theme {
	return c.theme
}

// SetTheme replaces the theme for the rest of the frame.
func (c *Context[S, M]) SetTheme(t Theme) {
	c.theme = t
}

// Frame returns the frame counter, starting at 1 for the first frame an
// App draws.
func (c *Context[S, M]) Frame() uint64 {
	return c.frame
}

// Pending returns a copy of the unclaimed input, oldest first.
func (c *Context[S, M]) Pending() []KeyEvent {
	return append([]KeyEvent(nil), c.inputs...)
}

// Claim removes and returns the first unclaimed event matching match.
// Each event can be claimed once per frame.
func (c *Context[S, M]) Claim(match func(KeyEvent) bool) (KeyEvent, bool) {
	for i, ke := range c.inputs {
		if match == nil || match(ke) {
			c.inputs = append(c.inputs[:i:i], c.inputs[i+1:]...)
			return ke, true
		}
	}
	return KeyEvent{}, false
}

// ClaimAll removes and returns every unclaimed event matching match.
func (c *Context[S, M]) ClaimAll(match func(KeyEvent) bool) []KeyEvent {
	var claimed []KeyEvent
	kept := c.inputs[:0:0]
	for _, ke := range c.inputs {
		if match == nil || match(ke) {
			claimed = append(claimed, ke)
			continue
		}
		kept = append(kept, ke)
	}
	c.inputs = kept
	return claimed
}

// Discarded returns how many events were left unclaimed when the frame
// ended. Unclaimed input is dropped, never carried into the next frame.
func (c *Context[S, M]) Discarded() int {
	return c.discarded
}

// EndFrame drops the remaining input and reports how much was dropped.
// Apps call it after every frame.
func (c *Context[S, M]) EndFrame() int {
	c.discarded = len(c.inputs)
	c.inputs = nil
	return c.discarded
}
