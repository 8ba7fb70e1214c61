package im

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	tui "github.com/radicle-dev/radicle-tui"
)

// Label draws text into the next area, one line per row.
func (ui *Ui[S, M]) Label(text string) Response {
	return ui.LabelStyled(text, ui.Theme().Text)
}

// LabelStyled is Label with an explicit style.
func (ui *Ui[S, M]) LabelStyled(text string, style tui.Style) Response {
	area, _ := ui.NextArea()
	ui.nextID()
	buf := ui.ctx.Buffer()
	for i, line := range strings.Split(text, "\n") {
		row := area.Row(i)
		if row.IsEmpty() {
			break
		}
		buf.SetLine(row, line, style)
	}
	return Response{}
}

// Separator draws a horizontal rule across the next area.
func (ui *Ui[S, M]) Separator() Response {
	return ui.rule('─', ui.Theme().BorderNormal)
}

// Overline draws a thin accent line across the next area, usually under an
// input field.
func (ui *Ui[S, M]) Overline() Response {
	return ui.rule('▔', tui.NewStyle().Foreground(tui.ColorFrom(tui.ColorAccent, ui.Theme().Dark)))
}

func (ui *Ui[S, M]) rule(r rune, style tui.Style) Response {
	area, _ := ui.NextArea()
	ui.nextID()
	row, _ := area.Rows(1)
	ui.ctx.Buffer().Fill(row, r, style)
	return Response{}
}

// CenteredText draws text centered in the next area.
func (ui *Ui[S, M]) CenteredText(text string, borders Borders) Response {
	area, focused := ui.NextArea()
	ui.nextID()
	theme := ui.Theme()
	inner := borders.draw(ui.ctx.Buffer(), area, theme, focused)
	drawCentered(ui.ctx.Buffer(), inner, text, theme.Dim)
	return Response{}
}

func drawCentered(buf *tui.Buffer, area tui.Rect, text string, style tui.Style) {
	lines := strings.Split(text, "\n")
	top := area.Y + max(area.Height-len(lines), 0)/2
	for i, line := range lines {
		y := top + i
		if y >= area.Bottom() {
			return
		}
		line = runewidth.Truncate(line, area.Width, "…")
		x := area.X + max(area.Width-runewidth.StringWidth(line), 0)/2
		buf.SetStringClipped(x, y, line, style, area)
	}
}

var textViewKeys = tui.Matcher(
	tui.KeyOf(tui.KeyUp), tui.RuneOf('k'),
	tui.KeyOf(tui.KeyDown), tui.RuneOf('j'),
	tui.KeyOf(tui.KeyLeft), tui.RuneOf('h'),
	tui.KeyOf(tui.KeyRight), tui.RuneOf('l'),
	tui.KeyOf(tui.KeyPageUp), tui.KeyOf(tui.KeyPageDown),
	tui.KeyOf(tui.KeyHome), tui.KeyOf(tui.KeyEnd),
)

// horizontalStep is how many columns Left and Right scroll a text view.
const horizontalStep = 3

// TextView draws scrollable text. With focus it scrolls with the arrow
// keys, h/j/k/l, PageUp, PageDown, Home and End. Scrolling is bounded by
// the size the view had on the previous frame.
func (ui *Ui[S, M]) TextView(text string, borders Borders) Response {
	area, focused, st, _ := ui.widget("textview")
	theme := ui.Theme()
	buf := ui.ctx.Buffer()

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}

	var resp Response
	if focused {
		offset, column := st.Offset, st.Column
		page := max(st.Height, 1)
		lastRow := max(len(lines)-st.Height, 0)
		lastCol := max(widest-st.Width, 0)
		for _, ke := range ui.ctx.ClaimAll(textViewKeys) {
			switch {
			case ke.Key == tui.KeyUp || ke.IsChar('k'):
				offset--
			case ke.Key == tui.KeyDown || ke.IsChar('j'):
				offset++
			case ke.Key == tui.KeyLeft || ke.IsChar('h'):
				column -= horizontalStep
			case ke.Key == tui.KeyRight || ke.IsChar('l'):
				column += horizontalStep
			case ke.Key == tui.KeyPageUp:
				offset -= page
			case ke.Key == tui.KeyPageDown:
				offset += page
			case ke.Key == tui.KeyHome:
				offset = 0
			case ke.Key == tui.KeyEnd:
				offset = lastRow
			}
			offset = clamp(offset, 0, lastRow)
			column = clamp(column, 0, lastCol)
		}
		resp.Changed = offset != st.Offset || column != st.Column
		st.Offset, st.Column = offset, column
	}

	inner := borders.draw(buf, area, theme, focused)
	scrollbar := len(lines) > inner.Height && inner.Width > 1
	content := inner
	if scrollbar {
		content = inner.Inset(0, 1, 0, 0)
	}
	st.Offset = clamp(st.Offset, 0, max(len(lines)-content.Height, 0))
	st.Height, st.Width = content.Height, content.Width

	for i := range content.Height {
		n := st.Offset + i
		if n >= len(lines) {
			break
		}
		line := ansi.Cut(lines[n], st.Column, st.Column+content.Width)
		buf.SetLine(content.Row(i), line, theme.Text)
	}
	if scrollbar {
		drawScrollbar(buf, inner, len(lines), st.Offset, theme.BorderStyleFor(focused))
	}
	return resp
}

// drawScrollbar draws a thumb in the rightmost column of area for content
// of total rows scrolled to offset.
func drawScrollbar(buf *tui.Buffer, area tui.Rect, total, offset int, style tui.Style) {
	h := area.Height
	if h <= 0 || total <= h {
		return
	}
	thumb := max(h*h/total, 1)
	pos := 0
	if span := total - h; span > 0 {
		pos = offset * (h - thumb) / span
	}
	x := area.Right() - 1
	for i := range thumb {
		buf.SetRune(x, area.Y+pos+i, '┃', style)
	}
}

func isTextInput(ke tui.KeyEvent) bool {
	if ke.Key == tui.KeyRune {
		return ke.Mod&(tui.ModCtrl|tui.ModAlt) == 0
	}
	switch ke.Key {
	case tui.KeyBackspace, tui.KeyDelete, tui.KeyLeft, tui.KeyRight,
		tui.KeyHome, tui.KeyEnd, tui.KeyCtrlA, tui.KeyCtrlE, tui.KeyCtrlU, tui.KeyCtrlK:
		return true
	}
	return false
}

// TextEdit draws a single line edit field holding initial when first shown.
// The text and cursor are kept across frames; the returned string is the
// current text and Changed is set when an edit changed it. With focus the
// field takes every printable key, so global handlers do not see them.
func (ui *Ui[S, M]) TextEdit(label, initial string, borders Borders) (string, Response) {
	area, focused, st, fresh := ui.widget("textedit")
	if fresh {
		st.Text = initial
		st.Cursor = utf8.RuneCountInString(initial)
	}
	theme := ui.Theme()
	buf := ui.ctx.Buffer()

	var resp Response
	if focused {
		text := []rune(st.Text)
		cursor := clamp(st.Cursor, 0, len(text))
		for _, ke := range ui.ctx.ClaimAll(isTextInput) {
			text, cursor = editLine(text, cursor, ke)
		}
		if string(text) != st.Text {
			resp.Changed = true
		}
		st.Text, st.Cursor = string(text), cursor
	}

	inner := borders.draw(buf, area, theme, focused)
	row, rest := inner.Rows(1)
	if row.IsEmpty() {
		return st.Text, resp
	}

	x := row.X
	if label != "" {
		x += buf.SetStringClipped(x, row.Y, " "+label+" ", theme.Cursor, row)
		x++
	}
	field := tui.NewRect(x, row.Y, row.Right()-x, 1)
	st.Width, st.Height = field.Width, 1
	drawEditField(buf, field, []rune(st.Text), st, focused, theme)

	if !rest.IsEmpty() {
		accent := tui.NewStyle().Foreground(tui.ColorFrom(tui.ColorAccent, theme.Dark))
		buf.Fill(rest.Row(0), '▔', accent)
	}
	return st.Text, resp
}

// editLine applies one key to a line of text.
func editLine(text []rune, cursor int, ke tui.KeyEvent) ([]rune, int) {
	switch ke.Key {
	case tui.KeyRune:
		text = append(text[:cursor:cursor], append([]rune{ke.Rune}, text[cursor:]...)...)
		cursor++
	case tui.KeyBackspace:
		if cursor > 0 {
			text = append(text[:cursor-1:cursor-1], text[cursor:]...)
			cursor--
		}
	case tui.KeyDelete:
		if cursor < len(text) {
			text = append(text[:cursor:cursor], text[cursor+1:]...)
		}
	case tui.KeyLeft:
		cursor = max(cursor-1, 0)
	case tui.KeyRight:
		cursor = min(cursor+1, len(text))
	case tui.KeyHome, tui.KeyCtrlA:
		cursor = 0
	case tui.KeyEnd, tui.KeyCtrlE:
		cursor = len(text)
	case tui.KeyCtrlU:
		text = append([]rune(nil), text[cursor:]...)
		cursor = 0
	case tui.KeyCtrlK:
		text = text[:cursor:cursor]
	}
	return text, cursor
}

// drawEditField draws text scrolled so the cursor stays visible.
func drawEditField(buf *tui.Buffer, field tui.Rect, text []rune, st *WidgetState, focused bool, theme tui.Theme) {
	if field.Width <= 0 {
		return
	}
	// st.Column is the first visible rune.
	st.Cursor = clamp(st.Cursor, 0, len(text))
	if st.Cursor < st.Column {
		st.Column = st.Cursor
	}
	for runewidth.StringWidth(string(text[st.Column:st.Cursor])) >= field.Width {
		st.Column++
	}
	st.Column = clamp(st.Column, 0, len(text))

	buf.SetLine(field, string(text[st.Column:]), theme.Text)
	if !focused {
		return
	}
	x := field.X + runewidth.StringWidth(string(text[st.Column:st.Cursor]))
	r := ' '
	if st.Cursor < len(text) {
		r = text[st.Cursor]
	}
	if x < field.Right() {
		buf.SetRune(x, field.Y, r, theme.Cursor)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
