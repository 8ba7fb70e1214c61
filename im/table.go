package im

import (
	"github.com/mattn/go-runewidth"

	tui "github.com/radicle-dev/radicle-tui"
)

// TableOptions configure Table.
type TableOptions struct {
	Columns []tui.Column
	Borders Borders
	// Empty is shown centered when there are no rows.
	Empty string
	// ReadOnly tables have no selection; navigation keys scroll instead.
	ReadOnly bool
}

// DefaultEmptyText is shown by tables without rows.
const DefaultEmptyText = "Nothing to show"

var tableKeys = tui.Matcher(
	tui.KeyOf(tui.KeyUp), tui.RuneOf('k'),
	tui.KeyOf(tui.KeyDown), tui.RuneOf('j'),
	tui.KeyOf(tui.KeyPageUp), tui.KeyOf(tui.KeyPageDown),
	tui.KeyOf(tui.KeyHome), tui.KeyOf(tui.KeyEnd),
)

// Table draws rows of cells, one row per line. With focus the selection
// moves with Up, Down, j, k, PageUp, PageDown, Home and End, and the
// visible window follows it. It returns the selected row, or -1 when there
// are no rows or the table is read-only.
func (ui *Ui[S, M]) Table(rows [][]string, opts TableOptions) (int, Response) {
	area, focused, st, _ := ui.widget("table")
	theme := ui.Theme()
	buf := ui.ctx.Buffer()
	n := len(rows)

	var resp Response
	if focused {
		// The page is the height measured on the previous frame.
		page := max(st.Height, 1)
		pos, last := st.Selected, max(n-1, 0)
		if opts.ReadOnly {
			pos, last = st.Offset, max(n-st.Height, 0)
		}
		start := pos
		for _, ke := range ui.ctx.ClaimAll(tableKeys) {
			switch {
			case ke.Key == tui.KeyUp || ke.IsChar('k'):
				pos--
			case ke.Key == tui.KeyDown || ke.IsChar('j'):
				pos++
			case ke.Key == tui.KeyPageUp:
				pos -= page
			case ke.Key == tui.KeyPageDown:
				pos += page
			case ke.Key == tui.KeyHome:
				pos = 0
			case ke.Key == tui.KeyEnd:
				pos = last
			}
			pos = clamp(pos, 0, last)
		}
		resp.Changed = pos != start
		if opts.ReadOnly {
			st.Offset = pos
		} else {
			st.Selected = pos
		}
	}

	inner := opts.Borders.draw(buf, area, theme, focused)
	st.Height, st.Width = inner.Height, inner.Width
	if n == 0 {
		st.Selected, st.Offset = 0, 0
		empty := opts.Empty
		if empty == "" {
			empty = DefaultEmptyText
		}
		drawCentered(buf, inner, empty, theme.Dim)
		return -1, resp
	}

	h := inner.Height
	if opts.ReadOnly {
		st.Offset = clamp(st.Offset, 0, max(n-h, 0))
	} else {
		st.Selected = clamp(st.Selected, 0, n-1)
		if st.Selected < st.Offset {
			st.Offset = st.Selected
		}
		if h > 0 && st.Selected >= st.Offset+h {
			st.Offset = st.Selected - h + 1
		}
		st.Offset = clamp(st.Offset, 0, max(n-h, 0))
	}

	scrollbar := n > h && inner.Width > 1
	content := inner
	if scrollbar {
		content = inner.Inset(0, 1, 0, 0)
	}
	columns := opts.Columns
	if len(columns) == 0 {
		columns = []tui.Column{{Width: tui.Fill(1)}}
	}

	for i := range h {
		r := st.Offset + i
		if r >= n {
			break
		}
		selected := !opts.ReadOnly && r == st.Selected
		buf.DrawRow(content.Row(i), columns, rows[r], func(c tui.Column) tui.Style {
			if selected {
				return theme.HighlightFor(focused)
			}
			return c.StyleOr(theme.Text)
		})
	}
	if scrollbar {
		drawScrollbar(buf, inner, n, st.Offset, theme.BorderStyleFor(focused))
	}

	if opts.ReadOnly {
		return -1, resp
	}
	return st.Selected, resp
}

// List is a single column Table of items.
func (ui *Ui[S, M]) List(items []string, borders Borders) (int, Response) {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item}
	}
	return ui.Table(rows, TableOptions{Borders: borders})
}

// Columns draws the header row of a table with the same columns.
func (ui *Ui[S, M]) Columns(columns []tui.Column, borders Borders) Response {
	area, focused := ui.NextArea()
	ui.nextID()
	theme := ui.Theme()
	buf := ui.ctx.Buffer()

	inner := borders.draw(buf, area, theme, focused)
	row, _ := inner.Rows(1)
	buf.DrawRow(row, columns, tui.ColumnTexts(columns), func(c tui.Column) tui.Style {
		return c.StyleOr(theme.Title)
	})
	return Response{}
}

// Bar draws a status bar whose columns hold Text.
func (ui *Ui[S, M]) Bar(columns []tui.Column, borders Borders) Response {
	area, focused := ui.NextArea()
	ui.nextID()
	theme := ui.Theme()
	buf := ui.ctx.Buffer()

	inner := borders.draw(buf, area, theme, focused)
	row, _ := inner.Rows(1)
	buf.DrawRow(row, columns, tui.ColumnTexts(columns), func(c tui.Column) tui.Style {
		return c.StyleOr(theme.Bar)
	})
	return Response{}
}

// Shortcut is one key hint of a shortcut bar.
type Shortcut struct {
	Key    string
	Action string
}

// Shortcuts draws key hints separated by divider, dropping those that do
// not fit.
func (ui *Ui[S, M]) Shortcuts(shortcuts []Shortcut, divider rune) Response {
	area, _ := ui.NextArea()
	ui.nextID()
	theme := ui.Theme()
	buf := ui.ctx.Buffer()

	row, _ := area.Rows(1)
	if row.IsEmpty() {
		return Response{}
	}
	sep := " " + string(divider) + " "
	x := row.X
	for i, s := range shortcuts {
		need := runewidth.StringWidth(s.Key) + 1 + runewidth.StringWidth(s.Action)
		if i > 0 {
			need += runewidth.StringWidth(sep)
		}
		if x+need > row.Right() {
			break
		}
		if i > 0 {
			x += buf.SetStringClipped(x, row.Y, sep, theme.Dim, row)
		}
		x += buf.SetStringClipped(x, row.Y, s.Key, theme.ShortcutKey, row)
		x += buf.SetStringClipped(x, row.Y, " "+s.Action, theme.ShortcutLabel, row)
	}
	return Response{}
}
