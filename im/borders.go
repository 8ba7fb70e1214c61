package im

import (
	tui "github.com/radicle-dev/radicle-tui"
)

type borderKind uint8

const (
	borderNone borderKind = iota
	borderSpacer
	borderAll
	borderTop
	borderSides
	borderBottom
	borderBottomSides
)

// Borders selects the frame drawn around a widget. Top, Bottom and the
// side variants are meant to be stacked: a header with BordersTop above a
// body with BordersSides above a footer with BordersBottom reads as one box.
type Borders struct {
	kind      borderKind
	top, left int
}

var (
	// BordersNone draws nothing and uses the whole area.
	BordersNone = Borders{}
	// BordersAll draws a box.
	BordersAll = Borders{kind: borderAll}
	// BordersTop draws the head of a box, closed below by a divider.
	BordersTop = Borders{kind: borderTop}
	// BordersSides draws only the left and right edges.
	BordersSides = Borders{kind: borderSides}
	// BordersBottom draws the foot of a box, opened above by a divider.
	BordersBottom = Borders{kind: borderBottom}
	// BordersBottomSides draws the left, right and bottom edges.
	BordersBottomSides = Borders{kind: borderBottomSides}
)

// Spacer leaves blank margins of top rows above and below and left columns
// on both sides.
func Spacer(top, left int) Borders {
	return Borders{kind: borderSpacer, top: top, left: left}
}

// draw renders the borders into area and returns the area left inside.
func (b Borders) draw(buf *tui.Buffer, area tui.Rect, theme tui.Theme, focused bool) tui.Rect {
	style := theme.BorderStyleFor(focused)
	border := theme.Border
	if area.IsEmpty() {
		return area
	}

	switch b.kind {
	case borderSpacer:
		return area.Inset(b.top, b.left, b.top, b.left)
	case borderAll:
		return tui.DrawBorder(buf, area, border, tui.SidesAll, style)
	case borderTop:
		inner := tui.DrawBorder(buf, area, border, tui.SidesAll, style)
		if area.Height >= 2 {
			tui.DrawDivider(buf, area, area.Bottom()-1, border, style)
		}
		return inner
	case borderSides:
		return tui.DrawBorder(buf, area, border, tui.SidesLR, style)
	case borderBottom:
		inner := tui.DrawBorder(buf, area, border, tui.SidesAll, style)
		if area.Height >= 2 {
			tui.DrawDivider(buf, area, area.Y, border, style)
		}
		return inner
	case borderBottomSides:
		return tui.DrawBorder(buf, area, border, tui.SidesLR|tui.SideBottom, style)
	default:
		return area
	}
}
