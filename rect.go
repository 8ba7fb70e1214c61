package tui

// Rect is an area of the screen in cells. X and Y are the top-left corner.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect clamps negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Right is the first column past r.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom is the first row past r.
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks r by the given margins, never below zero size.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return NewRect(r.X+left, r.Y+top, r.Width-left-right, r.Height-top-bottom)
}

// InsetUniform shrinks r by n on every side.
func (r Rect) InsetUniform(n int) Rect {
	return r.Inset(n, n, n, n)
}

// Intersect returns the overlap of r and other; the zero Rect if there is
// none.
func (r Rect) Intersect(other Rect) Rect {
	out := NewRect(max(r.X, other.X), max(r.Y, other.Y), 0, 0)
	out.Width = min(r.Right(), other.Right()) - out.X
	out.Height = min(r.Bottom(), other.Bottom()) - out.Y
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Rows splits off the first n rows, returning them and the remainder.
func (r Rect) Rows(n int) (head, rest Rect) {
	n = min(max(n, 0), r.Height)
	return NewRect(r.X, r.Y, r.Width, n), NewRect(r.X, r.Y+n, r.Width, r.Height-n)
}

// Row returns the single row at offset i, or an empty Rect when out of range.
func (r Rect) Row(i int) Rect {
	if i < 0 || i >= r.Height {
		return Rect{}
	}
	return NewRect(r.X, r.Y+i, r.Width, 1)
}
