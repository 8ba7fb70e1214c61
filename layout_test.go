package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	type tc struct {
		area        Rect
		dir         Direction
		constraints []Constraint
		want        []Rect
	}

	tests := map[string]tc{
		"length and fill": {
			area:        NewRect(0, 0, 10, 5),
			dir:         Vertical,
			constraints: []Constraint{Length(1), Fill(1), Length(1)},
			want:        []Rect{NewRect(0, 0, 10, 1), NewRect(0, 1, 10, 3), NewRect(0, 4, 10, 1)},
		},
		"weighted fills": {
			area:        NewRect(0, 0, 9, 1),
			dir:         Horizontal,
			constraints: []Constraint{Fill(1), Fill(2)},
			want:        []Rect{NewRect(0, 0, 3, 1), NewRect(3, 0, 6, 1)},
		},
		"percentages": {
			area:        NewRect(2, 0, 20, 1),
			dir:         Horizontal,
			constraints: []Constraint{Percentage(25), Percentage(75)},
			want:        []Rect{NewRect(2, 0, 5, 1), NewRect(7, 0, 15, 1)},
		},
		"min grows": {
			area:        NewRect(0, 0, 10, 1),
			dir:         Horizontal,
			constraints: []Constraint{Min(4), Length(2)},
			want:        []Rect{NewRect(0, 0, 8, 1), NewRect(8, 0, 2, 1)},
		},
		"overflow clips later segments": {
			area:        NewRect(0, 0, 4, 3),
			dir:         Vertical,
			constraints: []Constraint{Length(2), Length(2), Fill(1)},
			want:        []Rect{NewRect(0, 0, 4, 2), NewRect(0, 2, 4, 1), NewRect(0, 3, 4, 0)},
		},
		"empty area": {
			area:        NewRect(0, 0, 0, 0),
			dir:         Vertical,
			constraints: []Constraint{Length(2), Fill(1)},
			want:        []Rect{NewRect(0, 0, 0, 0), NewRect(0, 0, 0, 0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.area, tt.dir, tt.constraints...))
		})
	}
}

func TestSplit_NeverNegative(t *testing.T) {
	for w := 0; w < 12; w++ {
		for h := 0; h < 6; h++ {
			for _, r := range Split(NewRect(0, 0, w, h), Vertical, Length(3), Percentage(60), Min(2), Fill(1)) {
				require.GreaterOrEqual(t, r.Width, 0)
				require.GreaterOrEqual(t, r.Height, 0)
				require.LessOrEqual(t, r.Bottom(), max(h, 0))
			}
		}
	}
}

func TestExpandable3(t *testing.T) {
	type tc struct {
		width    int
		leftOnly bool
		want     int
	}

	tests := map[string]tc{
		"left only": {width: 200, leftOnly: true, want: 1},
		"narrow":    {width: 100, want: 3},
		"wide":      {width: 180, want: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			area := NewRect(0, 0, tt.width, 40)
			areas := Expandable3(area, tt.leftOnly)
			require.Len(t, areas, tt.want)

			cells := 0
			for _, a := range areas {
				cells += a.Width * a.Height
			}
			require.Equal(t, area.Width*area.Height, cells, "panes tile the area")
		})
	}

	narrow := Expandable3(NewRect(0, 0, 100, 40), false)
	require.Equal(t, narrow[1].X, narrow[2].X, "the right half is stacked")

	wide := Expandable3(NewRect(0, 0, 180, 40), false)
	require.Equal(t, 40, wide[2].Height, "three columns side by side")
}

func TestCentered(t *testing.T) {
	r := Centered(NewRect(0, 0, 100, 40), 80, 50)
	require.Equal(t, NewRect(10, 10, 80, 20), r)
}
