package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/muesli/termenv"
)

// escBuilder accumulates output for one terminal write. The buffer is
// reused across writes.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// csi appends ESC [ followed by params.
func (e *escBuilder) csi(params string) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = append(e.buf, params...)
}

// MoveTo moves the cursor to the 0-indexed cell x, y.
func (e *escBuilder) MoveTo(x, y int) {
	e.buf = append(e.buf, '\x1b', '[')
	e.buf = strconv.AppendInt(e.buf, int64(y+1), 10)
	e.buf = append(e.buf, ';')
	e.buf = strconv.AppendInt(e.buf, int64(x+1), 10)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the screen and the scrollback.
func (e *escBuilder) ClearScreen() {
	e.csi("2J")
	e.csi("3J")
}

func (e *escBuilder) ClearToEndOfScreen() { e.csi("J") }
func (e *escBuilder) HideCursor()         { e.csi("?25l") }
func (e *escBuilder) ShowCursor()         { e.csi("?25h") }
func (e *escBuilder) EnterAltScreen()     { e.csi("?1049h") }
func (e *escBuilder) ExitAltScreen()      { e.csi("?1049l") }
func (e *escBuilder) ResetStyle()         { e.csi("0m") }

// SetStyle emits one SGR sequence that resets the previous style and sets
// s. Colors are downsampled to profile.
func (e *escBuilder) SetStyle(s Style, profile termenv.Profile) {
	e.csi("0")
	for _, a := range sgrAttrs {
		if s.HasAttr(a.attr) {
			e.buf = append(e.buf, ';')
			e.buf = append(e.buf, a.code...)
		}
	}
	for _, seq := range [2]string{s.Fg.sequence(profile, false), s.Bg.sequence(profile, true)} {
		if seq != "" {
			e.buf = append(e.buf, ';')
			e.buf = append(e.buf, seq...)
		}
	}
	e.buf = append(e.buf, 'm')
}

func (e *escBuilder) WriteRune(r rune) {
	e.buf = utf8.AppendRune(e.buf, r)
}

// ReserveRows makes n rows starting at the cursor row available, scrolling
// when they run past the bottom, and returns to column 0 of the first.
func (e *escBuilder) ReserveRows(n int) {
	if n <= 0 {
		return
	}
	e.buf = append(e.buf, '\r')
	if n == 1 {
		return
	}
	for range n - 1 {
		e.buf = append(e.buf, '\n')
	}
	e.csi(strconv.Itoa(n-1) + "A")
}

// RequestCursorPosition asks for a cursor position report (DSR 6).
func (e *escBuilder) RequestCursorPosition() { e.csi("6n") }
