package tui

import (
	"fmt"
	"time"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// renderFrame draws one frame from the current state snapshot and commits
// it. The input queued since the previous frame is handed to the view and
// whatever it leaves unclaimed is dropped.
func (a *App[S, M, R]) renderFrame() error {
	start := time.Now()
	a.frame++

	a.buffer.Clear()
	ctx := &Context[S, M]{
		state:    a.state,
		sender:   a.sender,
		buf:      a.buffer,
		area:     a.buffer.Rect(),
		viewport: a.settings.viewport,
		theme:    a.theme,
		frame:    a.frame,
		inputs:   a.inputs,
	}
	a.inputs = nil

	a.view.Draw(ctx)
	if n := ctx.EndFrame(); n > 0 {
		debug.Logger().Debug("unclaimed input dropped", "frame", a.frame, "count", n)
	}

	if err := renderAt(a.term, a.buffer, a.startRow, a.needsFullRedraw); err != nil {
		return fmt.Errorf("render frame %d: %w", a.frame, err)
	}
	a.needsFullRedraw = false
	debug.Since("frame", start, "n", a.frame)
	return nil
}

// resize adapts the buffer to a new terminal size. Inline viewports keep
// their row unless the screen became too short to hold them there.
func (a *App[S, M, R]) resize(width, termHeight int) {
	vp := a.settings.viewport
	a.startRow = vp.startRow(a.startRow, termHeight)
	a.buffer.Resize(max(width, 0), vp.rows(termHeight))
	// Schedule full redraw to clear any visual artifacts
	a.needsFullRedraw = true
	debug.Logger().Debug("resized", "width", width, "height", termHeight, "startRow", a.startRow)
}
