package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Buffer is the cell grid a frame is drawn into. Views write to the back
// grid; the renderer sends the Diff against the front grid, which holds
// what the terminal shows, and then calls Swap.
type Buffer struct {
	front, back   []Cell
	width, height int
}

// CellChange is a cell whose back and front content differ.
type CellChange struct {
	X, Y int
	Cell Cell
}

var blankCell = Cell{Rune: ' ', Width: 1}

func blankGrid(n int) []Cell {
	g := make([]Cell, n)
	for i := range g {
		g[i] = blankCell
	}
	return g
}

// NewBuffer creates a blank buffer. Negative sizes count as zero.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	return &Buffer{
		front:  blankGrid(width * height),
		back:   blankGrid(width * height),
		width:  width,
		height: height,
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect is the whole buffer.
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// at returns the back cell at x, y, or nil outside the buffer.
func (b *Buffer) at(x, y int) *Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.back[y*b.width+x]
}

// Cell returns the back cell at x, y; the zero Cell outside the buffer.
func (b *Buffer) Cell(x, y int) Cell {
	if c := b.at(x, y); c != nil {
		return *c
	}
	return Cell{}
}

// SetRune writes r at x, y. A wide rune takes the cell to its right as
// well and is replaced by a space when it would stick out of the buffer.
// Wide runes the write cuts in half are blanked.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	c := b.at(x, y)
	if c == nil {
		return
	}
	w := RuneWidth(r)
	if w == 2 && x+1 >= b.width {
		r, w = ' ', 1
	}
	for i := x; i < x+w; i++ {
		b.unsplit(i, y)
	}
	*c = Cell{Rune: r, Style: style, Width: uint8(w)}
	if w == 2 {
		*b.at(x+1, y) = Cell{Style: style}
	}
}

// unsplit blanks the other half of a wide rune covering x, y.
func (b *Buffer) unsplit(x, y int) {
	c := b.at(x, y)
	switch {
	case c == nil:
	case c.IsContinuation():
		if left := b.at(x-1, y); left != nil {
			*left = blankCell
		}
		*c = blankCell
	case c.Width == 2:
		if right := b.at(x+1, y); right != nil {
			*right = blankCell
		}
	}
}

// SetString writes s from x, y without wrapping and returns the width
// written. Runes left of the buffer are skipped.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringClipped(x, y, s, style, b.Rect())
}

// SetStringClipped writes s from x, y, dropping every rune not wholly
// inside clip. It returns the width written.
func (b *Buffer) SetStringClipped(x, y int, s string, style Style, clip Rect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		if x >= clip.Right() {
			break
		}
		w := RuneWidth(r)
		if x >= clip.X && x+w <= clip.Right() {
			b.SetRune(x, y, r, style)
			written += w
		}
		x += w
	}
	return written
}

// Fill sets every cell of rect to r. A wide r that does not fit the last
// column leaves a space there.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	w := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x += w {
			if x+w > rect.Right() {
				b.SetRune(x, y, ' ', style)
				break
			}
			b.SetRune(x, y, r, style)
		}
	}
}

// SetLine writes s into a single-row area, truncating with an ellipsis when
// it is wider than the area and padding the rest with spaces in style.
// Returns the display width written.
func (b *Buffer) SetLine(area Rect, s string, style Style) int {
	if area.IsEmpty() {
		return 0
	}
	if ansi.StringWidth(s) > area.Width {
		s = ansi.Truncate(s, area.Width, "…")
	}
	written := b.SetStringClipped(area.X, area.Y, s, style, area)
	b.Fill(NewRect(area.X+written, area.Y, area.Width-written, 1), ' ', style)
	return written
}

// Clear blanks the back grid.
func (b *Buffer) Clear() {
	for i := range b.back {
		b.back[i] = blankCell
	}
}

// ClearRect blanks rect, including the outer halves of wide runes crossing
// its edges.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	for y := rect.Y; y < rect.Bottom(); y++ {
		b.unsplit(rect.X, y)
		b.unsplit(rect.Right()-1, y)
		for x := rect.X; x < rect.Right(); x++ {
			*b.at(x, y) = blankCell
		}
	}
}

// Diff returns the changed cells in row-major order.
func (b *Buffer) Diff() []CellChange {
	var changes []CellChange
	for i, c := range b.back {
		if !c.Equal(b.front[i]) {
			changes = append(changes, CellChange{X: i % b.width, Y: i / b.width, Cell: c})
		}
	}
	return changes
}

// Swap marks the back grid as shown.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// String returns the back grid as text, one line per row.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := range b.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.back[y*b.width : (y+1)*b.width] {
			switch {
			case c.IsContinuation():
			case c.Rune == 0:
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// StringTrimmed is String without trailing spaces on each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Resize changes the size of both grids, keeping the overlapping cells.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == b.width && height == b.height {
		return
	}
	front, back := blankGrid(width*height), blankGrid(width*height)
	cw := min(width, b.width)
	for y := range min(height, b.height) {
		copy(front[y*width:y*width+cw], b.front[y*b.width:])
		copy(back[y*width:y*width+cw], b.back[y*b.width:])
	}
	b.front, b.back = front, back
	b.width, b.height = width, height
}
