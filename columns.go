package tui

import "github.com/mattn/go-runewidth"

// Column describes one column of a table row, header or status bar.
type Column struct {
	// Text is the header title, or the content when used in a bar.
	Text  string
	Width Constraint
	// Skip drops the column everywhere.
	Skip bool
	// MinWidth hides the column when the row is narrower than this,
	// usually one of the Breakpoint constants.
	MinWidth int
	// Style overrides the default style of the column's cells.
	Style Style
}

// Shown reports whether the column is drawn in a row width cells wide.
func (c Column) Shown(width int) bool {
	return !c.Skip && width >= c.MinWidth
}

// StyleOr returns the column's style, or def when it has none.
func (c Column) StyleOr(def Style) Style {
	if c.Style != (Style{}) {
		return c.Style
	}
	return def
}

// ColumnAreas returns the indexes of the columns shown in row and their
// areas within it.
func ColumnAreas(columns []Column, row Rect) ([]int, []Rect) {
	var (
		idx         []int
		constraints []Constraint
	)
	for i, c := range columns {
		if c.Shown(row.Width) {
			idx = append(idx, i)
			constraints = append(constraints, c.Width)
		}
	}
	return idx, Split(row, Horizontal, constraints...)
}

// ColumnTexts returns the Text of every column.
func ColumnTexts(columns []Column) []string {
	texts := make([]string, len(columns))
	for i, c := range columns {
		texts[i] = c.Text
	}
	return texts
}

// DrawRow fills row with style(Column{}) and draws cells into the shown
// columns, cell i going to column i. Cells are truncated with an ellipsis
// and every one but the last is followed by a space.
func (b *Buffer) DrawRow(row Rect, columns []Column, cells []string, style func(Column) Style) {
	b.Fill(row, ' ', style(Column{}))
	idx, areas := ColumnAreas(columns, row)
	for n, i := range idx {
		if i >= len(cells) {
			continue
		}
		area := areas[n]
		if area.Width > 1 && n < len(idx)-1 {
			area = area.Inset(0, 1, 0, 0)
		}
		text := runewidth.Truncate(cells[i], area.Width, "…")
		b.SetStringClipped(area.X, area.Y, text, style(columns[i]), area)
	}
}
