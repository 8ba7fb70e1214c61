package im

import (
	tui "github.com/radicle-dev/radicle-tui"
)

// Layout splits a container's area into the areas its children draw into,
// in call order.
type Layout struct {
	split func(area tui.Rect) []tui.Rect
	n     int
}

// Split returns the child areas for area.
func (l Layout) Split(area tui.Rect) []tui.Rect {
	if l.split == nil {
		return nil
	}
	return l.split(area)
}

// Len returns the number of child areas.
func (l Layout) Len() int {
	return l.n
}

// Vertical stacks children top to bottom.
func Vertical(constraints ...tui.Constraint) Layout {
	return Layout{
		split: func(area tui.Rect) []tui.Rect {
			return tui.Split(area, tui.Vertical, constraints...)
		},
		n: len(constraints),
	}
}

// Horizontal places children left to right.
func Horizontal(constraints ...tui.Constraint) Layout {
	return Layout{
		split: func(area tui.Rect) []tui.Rect {
			return tui.Split(area, tui.Horizontal, constraints...)
		},
		n: len(constraints),
	}
}

// Fill gives the whole area to a single child.
func Fill() Layout {
	return Vertical(tui.Fill(1))
}

// Expandable3 is the three pane browser layout. With leftOnly it has a
// single area.
func Expandable3(leftOnly bool) Layout {
	n := 3
	if leftOnly {
		n = 1
	}
	return Layout{
		split: func(area tui.Rect) []tui.Rect {
			return tui.Expandable3(area, leftOnly)
		},
		n: n,
	}
}

// Popup is a single area centered in the container, sized in percent of it.
func Popup(percentX, percentY int) Layout {
	return Layout{
		split: func(area tui.Rect) []tui.Rect {
			return []tui.Rect{tui.Centered(area, percentX, percentY)}
		},
		n: 1,
	}
}
