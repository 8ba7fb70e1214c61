package tui

import "github.com/mattn/go-runewidth"

// Cell is one terminal cell. A wide rune occupies two cells: the first
// holds the rune with Width 2, the second is a continuation with Width 0
// and no rune.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell returns a cell holding r.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether c is the right half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Width == other.Width && c.Style.Equal(other.Style)
}

// RuneWidth returns how many cells r takes, 1 or 2. Zero-width and control
// runes are given a cell of their own.
func RuneWidth(r rune) int {
	return min(max(runewidth.RuneWidth(r), 1), 2)
}
