package tui

import (
	"fmt"
	"strconv"
)

// ViewportMode selects how an App claims the terminal.
type ViewportMode uint8

const (
	// ViewportFullscreen draws on the alternate screen using every row.
	ViewportFullscreen ViewportMode = iota
	// ViewportInline draws into a fixed number of rows below the cursor and
	// leaves the primary screen and its scrollback intact.
	ViewportInline
)

// Viewport describes the drawing region.
type Viewport struct {
	Mode   ViewportMode
	Height int // rows for ViewportInline
}

// Fullscreen returns a viewport using the alternate screen.
func Fullscreen() Viewport {
	return Viewport{Mode: ViewportFullscreen}
}

// Inline returns a viewport of height rows at the cursor position.
func Inline(height int) Viewport {
	return Viewport{Mode: ViewportInline, Height: height}
}

// IsInline reports whether the viewport draws on the primary screen.
func (v Viewport) IsInline() bool {
	return v.Mode == ViewportInline
}

// Validate reports configuration errors.
func (v Viewport) Validate() error {
	if v.IsInline() && v.Height < 1 {
		return fmt.Errorf("inline viewport height must be at least 1 row, got %d", v.Height)
	}
	return nil
}

// rows returns the number of rows drawn on a terminal of termHeight rows.
func (v Viewport) rows(termHeight int) int {
	if v.IsInline() {
		return min(v.Height, max(termHeight, 0))
	}
	return max(termHeight, 0)
}

// startRow returns the terminal row the viewport begins at. Inline
// viewports begin at the cursor row, moved up when their rows would run
// past the bottom of the screen.
func (v Viewport) startRow(cursorRow, termHeight int) int {
	if v.IsInline() {
		return max(min(cursorRow, termHeight-v.rows(termHeight)), 0)
	}
	return 0
}

func (v Viewport) String() string {
	if v.IsInline() {
		return "inline(" + strconv.Itoa(v.Height) + ")"
	}
	return "fullscreen"
}
