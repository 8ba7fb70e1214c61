package rm

import (
	tui "github.com/radicle-dev/radicle-tui"
)

// ListProps configure a List.
type ListProps struct {
	Columns []tui.Column
	Rows    [][]string
	// Header draws the column titles above the rows.
	Header bool
	// Empty is shown when there are no rows.
	Empty string
}

// ListEvent is what a List reports to its OnKey callback.
type ListEvent struct {
	Key      tui.KeyEvent
	Selected int // -1 without rows
	Props    ListProps
}

// List is a selectable table of rows. Up, Down, j, k, PageUp, PageDown,
// Home and End move the selection; other keys go to the OnKey callback.
type List[S, M any] struct {
	props    ListProps
	selected int
	offset   int
	height   int

	onUpdate func(S) ListProps
	onKey    func(ListEvent) (M, bool)
}

// NewList creates an empty list.
func NewList[S, M any]() *List[S, M] {
	return &List[S, M]{}
}

// OnUpdate derives the list's props from every state snapshot.
func (l *List[S, M]) OnUpdate(fn func(S) ListProps) *List[S, M] {
	l.onUpdate = fn
	return l
}

// OnKey sets the callback for keys the list does not handle itself. It
// returns the message to send, if any.
func (l *List[S, M]) OnKey(fn func(ListEvent) (M, bool)) *List[S, M] {
	l.onKey = fn
	return l
}

// Selected returns the selected row, or -1 without rows.
func (l *List[S, M]) Selected() int {
	if len(l.props.Rows) == 0 {
		return -1
	}
	return l.selected
}

// IsFocusable reports whether there is anything to select.
func (l *List[S, M]) IsFocusable() bool {
	return len(l.props.Rows) > 0
}

func (l *List[S, M]) Update(state S) {
	if l.onUpdate != nil {
		l.props = l.onUpdate(state)
	}
	l.selected = clamp(l.selected, 0, max(len(l.props.Rows)-1, 0))
}

func (l *List[S, M]) HandleKey(ke tui.KeyEvent, send func(M)) bool {
	n := len(l.props.Rows)
	page := max(l.height, 1)
	last := max(n-1, 0)

	switch {
	case ke.Key == tui.KeyUp || ke.IsChar('k'):
		l.selected = max(l.selected-1, 0)
	case ke.Key == tui.KeyDown || ke.IsChar('j'):
		l.selected = min(l.selected+1, last)
	case ke.Key == tui.KeyPageUp:
		l.selected = max(l.selected-page, 0)
	case ke.Key == tui.KeyPageDown:
		l.selected = min(l.selected+page, last)
	case ke.Key == tui.KeyHome:
		l.selected = 0
	case ke.Key == tui.KeyEnd:
		l.selected = last
	default:
		if l.onKey == nil {
			return false
		}
		msg, ok := l.onKey(ListEvent{Key: ke, Selected: l.Selected(), Props: l.props})
		if ok {
			send(msg)
		}
		return ok
	}
	return true
}

func (l *List[S, M]) Render(buf *tui.Buffer, props RenderProps) {
	area := props.Area
	theme := props.Theme
	columns := l.props.Columns
	if len(columns) == 0 {
		columns = []tui.Column{{Width: tui.Fill(1)}}
	}

	if l.props.Header {
		var header tui.Rect
		header, area = area.Rows(1)
		buf.DrawRow(header, columns, tui.ColumnTexts(columns), func(c tui.Column) tui.Style {
			return c.StyleOr(theme.Title)
		})
	}

	l.height = area.Height
	n := len(l.props.Rows)
	if n == 0 {
		empty := l.props.Empty
		if empty == "" {
			empty = "Nothing to show"
		}
		buf.SetLine(area.Row(area.Height/2), empty, theme.Dim)
		return
	}

	if l.selected < l.offset {
		l.offset = l.selected
	}
	if h := area.Height; h > 0 && l.selected >= l.offset+h {
		l.offset = l.selected - h + 1
	}
	l.offset = clamp(l.offset, 0, max(n-area.Height, 0))

	for i := range area.Height {
		r := l.offset + i
		if r >= n {
			break
		}
		selected := r == l.selected
		buf.DrawRow(area.Row(i), columns, l.props.Rows[r], func(c tui.Column) tui.Style {
			if selected {
				return theme.HighlightFor(props.Focus)
			}
			return c.StyleOr(theme.Text)
		})
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
