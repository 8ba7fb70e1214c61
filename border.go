package tui

import "github.com/charmbracelet/x/ansi"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
	TeeLeft     rune // left edge meeting a horizontal divider
	TeeRight    rune // right edge meeting a horizontal divider
}

var borderChars = map[BorderStyle]BorderChars{
	BorderSingle:  {'┌', '─', '┐', '│', '│', '└', '─', '┘', '├', '┤'},
	BorderDouble:  {'╔', '═', '╗', '║', '║', '╚', '═', '╝', '╠', '╣'},
	BorderRounded: {'╭', '─', '╮', '│', '│', '╰', '─', '╯', '├', '┤'},
	BorderThick:   {'┏', '━', '┓', '┃', '┃', '┗', '━', '┛', '┣', '┫'},
}

// Chars returns the box-drawing characters for this border style.
// BorderNone and unknown styles return spaces.
func (b BorderStyle) Chars() BorderChars {
	if chars, ok := borderChars[b]; ok {
		return chars
	}
	return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
}

// Sides selects which edges of a border are drawn.
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SidesNone Sides = 0
	SidesAll        = SideTop | SideRight | SideBottom | SideLeft
	SidesLR         = SideLeft | SideRight
)

// Has reports whether s includes every side in o.
func (s Sides) Has(o Sides) bool {
	return s&o == o
}

// DrawBorder draws the selected sides of a border around rect and returns
// the inner area. Corners are only drawn where two drawn sides meet.
func DrawBorder(buf *Buffer, rect Rect, border BorderStyle, sides Sides, style Style) Rect {
	inner := rect
	if sides.Has(SideTop) {
		inner = inner.Inset(1, 0, 0, 0)
	}
	if sides.Has(SideBottom) {
		inner = inner.Inset(0, 0, 1, 0)
	}
	if sides.Has(SideLeft) {
		inner = inner.Inset(0, 0, 0, 1)
	}
	if sides.Has(SideRight) {
		inner = inner.Inset(0, 1, 0, 0)
	}
	if border == BorderNone || rect.IsEmpty() {
		return inner
	}

	chars := border.Chars()
	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	if sides.Has(SideTop) {
		for x := left; x <= right; x++ {
			buf.SetRune(x, top, chars.Top, style)
		}
	}
	if sides.Has(SideBottom) {
		for x := left; x <= right; x++ {
			buf.SetRune(x, bottom, chars.Bottom, style)
		}
	}
	if sides.Has(SideLeft) {
		for y := top; y <= bottom; y++ {
			buf.SetRune(left, y, chars.Left, style)
		}
	}
	if sides.Has(SideRight) {
		for y := top; y <= bottom; y++ {
			buf.SetRune(right, y, chars.Right, style)
		}
	}

	if rect.Width < 2 || rect.Height < 2 {
		return inner
	}
	if sides.Has(SideTop | SideLeft) {
		buf.SetRune(left, top, chars.TopLeft, style)
	}
	if sides.Has(SideTop | SideRight) {
		buf.SetRune(right, top, chars.TopRight, style)
	}
	if sides.Has(SideBottom | SideLeft) {
		buf.SetRune(left, bottom, chars.BottomLeft, style)
	}
	if sides.Has(SideBottom | SideRight) {
		buf.SetRune(right, bottom, chars.BottomRight, style)
	}
	return inner
}

// DrawDivider draws a horizontal divider on row y of rect, joined to the
// side borders with tee characters.
func DrawDivider(buf *Buffer, rect Rect, y int, border BorderStyle, style Style) {
	if border == BorderNone || rect.Width < 2 {
		return
	}
	chars := border.Chars()
	for x := rect.X + 1; x < rect.Right()-1; x++ {
		buf.SetRune(x, y, chars.Top, style)
	}
	buf.SetRune(rect.X, y, chars.TeeLeft, style)
	buf.SetRune(rect.Right()-1, y, chars.TeeRight, style)
}

// DrawBox draws a full box border on the buffer at the specified rectangle.
// If the rectangle is smaller than 2x2, the function does nothing.
func DrawBox(buf *Buffer, rect Rect, border BorderStyle, style Style) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	DrawBorder(buf, rect, border, SidesAll, style)
}

// DrawBoxWithTitle draws a box border with a title in the top border.
// The title is centered and truncated with an ellipsis if too long.
func DrawBoxWithTitle(buf *Buffer, rect Rect, border BorderStyle, title string, style Style) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}
	DrawBox(buf, rect, border, style)

	available := rect.Width - 2
	if title == "" || available <= 0 {
		return
	}
	title = ansi.Truncate(title, available, "…")
	startX := rect.X + 1 + (available-ansi.StringWidth(title))/2
	buf.SetString(startX, rect.Y, title, style)
}
