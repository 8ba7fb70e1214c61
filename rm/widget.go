// Package rm is the retained-mode widget strategy. Widgets are long-lived
// values: Update derives their typed props from each new state snapshot,
// HandleKey reacts to input and may send messages, and Render draws them.
// A Window ties a tree of widgets to the frontend loop as a tui.View.
package rm

import (
	tui "github.com/radicle-dev/radicle-tui"
)

// RenderProps describe where and how a widget is drawn on this frame.
type RenderProps struct {
	Area  tui.Rect
	Focus bool
	Theme tui.Theme
}

// WithArea returns a copy of p drawing into area.
func (p RenderProps) WithArea(area tui.Rect) RenderProps {
	p.Area = area
	return p
}

// WithFocus returns a copy of p with focus set.
func (p RenderProps) WithFocus(focus bool) RenderProps {
	p.Focus = focus
	return p
}

// Widget is a retained-mode widget over application state S and messages M.
type Widget[S, M any] interface {
	// Update rebuilds the widget's props from a new state snapshot.
	Update(state S)
	// HandleKey processes a key and reports whether it was consumed.
	// Messages for the store go through send.
	HandleKey(ke tui.KeyEvent, send func(M)) bool
	// Render draws the widget.
	Render(buf *tui.Buffer, props RenderProps)
}
