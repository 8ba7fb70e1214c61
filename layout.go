package tui

// Direction specifies the axis along which an area is split.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// Unit specifies how a Constraint is interpreted.
type Unit uint8

const (
	UnitFill    Unit = iota // Share of the space left after other constraints
	UnitLength              // Absolute terminal cells
	UnitPercent             // Percentage of the split area
	UnitMin                 // At least Amount cells, grows like a fill of weight 1
)

// Constraint sizes one segment of a split.
type Constraint struct {
	Amount int
	Unit   Unit
}

// Length returns a constraint of exactly n cells.
func Length(n int) Constraint {
	return Constraint{Amount: max(n, 0), Unit: UnitLength}
}

// Percentage returns a constraint of p percent (0-100) of the area.
func Percentage(p int) Constraint {
	return Constraint{Amount: min(max(p, 0), 100), Unit: UnitPercent}
}

// Min returns a constraint of at least n cells that takes a share of any
// space left over.
func Min(n int) Constraint {
	return Constraint{Amount: max(n, 0), Unit: UnitMin}
}

// Fill returns a constraint taking a share of the remaining space
// proportional to weight.
func Fill(weight int) Constraint {
	return Constraint{Amount: max(weight, 1), Unit: UnitFill}
}

// base returns the cells the constraint claims before leftovers are shared.
func (c Constraint) base(available int) int {
	switch c.Unit {
	case UnitLength, UnitMin:
		return c.Amount
	case UnitPercent:
		return available * c.Amount / 100
	default:
		return 0
	}
}

// weight returns the constraint's share of leftover space.
func (c Constraint) weight() int {
	switch c.Unit {
	case UnitFill:
		return c.Amount
	case UnitMin:
		return 1
	default:
		return 0
	}
}

// Split divides area along dir. Fixed sizes are granted in order until the
// area runs out; leftover space goes to Fill and Min constraints by weight.
// The result always has len(constraints) rects, none with negative size.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}

	sizes := make([]int, len(constraints))
	used, weights := 0, 0
	for i, c := range constraints {
		sizes[i] = min(c.base(total), total-used)
		used += sizes[i]
		weights += c.weight()
	}

	if leftover := total - used; leftover > 0 && weights > 0 {
		given, last := 0, -1
		for i, c := range constraints {
			if w := c.weight(); w > 0 {
				share := leftover * w / weights
				sizes[i] += share
				given += share
				last = i
			}
		}
		sizes[last] += leftover - given
	}

	rects := make([]Rect, len(constraints))
	offset := 0
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = NewRect(area.X+offset, area.Y, size, area.Height)
		} else {
			rects[i] = NewRect(area.X, area.Y+offset, area.Width, size)
		}
		offset += size
	}
	return rects
}

// Width breakpoints at which tables drop their less important columns.
const (
	BreakpointXSmall = 50
	BreakpointSmall  = 70
	BreakpointMedium = 150
)

// Expandable3Breakpoint is the width above which Expandable3 lays out
// three columns.
const Expandable3Breakpoint = 140

// Expandable3 returns the panes of a list/detail layout. With leftOnly the
// whole area is one pane. Up to Expandable3Breakpoint columns the area is
// split in half and the right half is stacked 65/35; wider areas get three
// equal columns.
func Expandable3(area Rect, leftOnly bool) []Rect {
	switch {
	case leftOnly:
		return []Rect{area}
	case area.Width <= Expandable3Breakpoint:
		h := Split(area, Horizontal, Percentage(50), Fill(1))
		v := Split(h[1], Vertical, Percentage(65), Fill(1))
		return []Rect{h[0], v[0], v[1]}
	default:
		return Split(area, Horizontal, Fill(1), Fill(1), Fill(1))
	}
}

// Centered returns a rect of percentX by percentY of area, centered in it.
func Centered(area Rect, percentX, percentY int) Rect {
	v := Split(area, Vertical, Percentage((100-percentY)/2), Percentage(percentY), Fill(1))
	h := Split(v[1], Horizontal, Percentage((100-percentX)/2), Percentage(percentX), Fill(1))
	return h[1]
}
