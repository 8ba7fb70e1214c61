package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// cursorReportTimeout bounds the wait for a reply to a cursor position
// request. Terminals that do not answer cost this much at startup.
const cursorReportTimeout = 200 * time.Millisecond

// maxCursorReportLen is how many bytes are read looking for a reply.
const maxCursorReportLen = 64

// ANSITerminal implements Terminal with ANSI escape sequences.
type ANSITerminal struct {
	out       io.Writer // os.Stdout, or the controlling terminal when stdio is redirected
	in        *os.File  // read for cursor position reports
	fd        int       // for raw mode and size queries
	profile   termenv.Profile
	lastStyle Style
	styleSet  bool // lastStyle is what the terminal currently uses
	esc       *escBuilder
	rawState  *term.State
}

// NewANSITerminal creates a terminal writing to out and controlling tty.
// The color profile is detected from out and the environment (TERM,
// COLORTERM, NO_COLOR).
func NewANSITerminal(out io.Writer, tty *os.File) *ANSITerminal {
	return &ANSITerminal{
		out:     out,
		in:      tty,
		fd:      int(tty.Fd()),
		profile: termenv.NewOutput(out).EnvColorProfile(),
		esc:     newEscBuilder(4096),
	}
}

// SetColorProfile overrides the detected color profile.
func (t *ANSITerminal) SetColorProfile(p termenv.Profile) {
	t.profile = p
}

// Size returns the terminal dimensions.
// Returns a default of 80x24 if the size cannot be determined.
func (t *ANSITerminal) Size() (width, height int) {
	w, h, err := windowSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func (t *ANSITerminal) write() error {
	if _, err := t.out.Write(t.esc.Bytes()); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	return nil
}

// Flush writes the given cell changes to the terminal.
// It optimizes cursor movement and style changes.
func (t *ANSITerminal) Flush(changes []CellChange) error {
	if len(changes) == 0 {
		return nil
	}

	t.esc.Reset()
	lastX, lastY := -1, -1

	for _, ch := range changes {
		// The second column of a wide character was written with its primary cell
		if ch.Cell.IsContinuation() {
			continue
		}
		if ch.Y != lastY || ch.X != lastX+1 {
			t.esc.MoveTo(ch.X, ch.Y)
		}

		if !t.styleSet || !ch.Cell.Style.Equal(t.lastStyle) {
			t.esc.SetStyle(ch.Cell.Style, t.profile)
			t.lastStyle = ch.Cell.Style
			t.styleSet = true
		}

		if ch.Cell.Rune > 0 {
			t.esc.WriteRune(ch.Cell.Rune)
		} else {
			t.esc.WriteRune(' ')
		}

		lastX = ch.X + max(int(ch.Cell.Width), 1) - 1
		lastY = ch.Y
	}

	return t.write()
}

// Clear clears the entire terminal screen.
func (t *ANSITerminal) Clear() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.MoveTo(0, 0)
	t.esc.ClearScreen()
	t.esc.MoveTo(0, 0)
	t.styleSet = false
	return t.write()
}

// ClearToEnd clears from the cursor to the end of the screen.
func (t *ANSITerminal) ClearToEnd() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ClearToEndOfScreen()
	t.styleSet = false
	return t.write()
}

// SetCursor moves the cursor to the specified position (0-indexed).
func (t *ANSITerminal) SetCursor(x, y int) error {
	t.esc.Reset()
	t.esc.MoveTo(x, y)
	return t.write()
}

// HideCursor makes the cursor invisible.
func (t *ANSITerminal) HideCursor() error {
	t.esc.Reset()
	t.esc.HideCursor()
	return t.write()
}

// ShowCursor makes the cursor visible.
func (t *ANSITerminal) ShowCursor() error {
	t.esc.Reset()
	t.esc.ResetStyle()
	t.esc.ShowCursor()
	t.styleSet = false
	return t.write()
}

// CursorPosition asks the terminal where the cursor is and waits briefly
// for the reply. The terminal must be in raw mode and nothing else may be
// reading its input; bytes typed before the reply are dropped.
func (t *ANSITerminal) CursorPosition() (x, y int, err error) {
	t.esc.Reset()
	t.esc.RequestCursorPosition()
	if err := t.write(); err != nil {
		return 0, 0, err
	}

	cr, err := cancelreader.NewReader(t.in)
	if err != nil {
		return 0, 0, fmt.Errorf("cursor position: %w", err)
	}
	defer cr.Close()

	type report struct {
		x, y int
		err  error
	}
	done := make(chan report, 1)
	go func() {
		var r report
		r.x, r.y, r.err = readCursorReport(cr)
		done <- r
	}()

	timer := time.NewTimer(cursorReportTimeout)
	defer timer.Stop()
	select {
	case r := <-done:
		return r.x, r.y, r.err
	case <-timer.C:
		cr.Cancel()
		<-done
		return 0, 0, errors.New("cursor position: no reply from terminal")
	}
}

// readCursorReport reads up to a cursor position report (ESC [ row ; col R)
// and returns its 0-indexed coordinates. Anything before it is skipped.
func readCursorReport(r io.Reader) (x, y int, err error) {
	const (
		seekEsc = iota
		seekBracket
		inParams
	)
	var b [1]byte
	var params []byte
	state := seekEsc
	for range maxCursorReportLen {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		c := b[0]
		switch {
		case c == 0x1b:
			state, params = seekBracket, params[:0]
		case state == seekBracket && c == '[':
			state = inParams
		case state == inParams && (c >= '0' && c <= '9' || c == ';'):
			params = append(params, c)
		case state == inParams && c == 'R':
			row, col, ok := strings.Cut(string(params), ";")
			if !ok {
				return 0, 0, fmt.Errorf("malformed cursor position report %q", params)
			}
			y, errRow := strconv.Atoi(row)
			x, errCol := strconv.Atoi(col)
			if errRow != nil || errCol != nil || x < 1 || y < 1 {
				return 0, 0, fmt.Errorf("malformed cursor position report %q", params)
			}
			return x - 1, y - 1, nil
		default:
			state = seekEsc
		}
	}
	return 0, 0, errors.New("read cursor position: no report found")
}

// ReserveRows makes room for n rows starting at the cursor row.
func (t *ANSITerminal) ReserveRows(n int) error {
	t.esc.Reset()
	t.esc.ReserveRows(n)
	return t.write()
}

// EnterRawMode puts the terminal into raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.rawState != nil {
		return nil
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the terminal to its previous mode.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	err := term.Restore(t.fd, t.rawState)
	t.rawState = nil
	if err != nil {
		return fmt.Errorf("exit raw mode: %w", err)
	}
	return nil
}

// EnterAltScreen switches to the alternate screen buffer.
func (t *ANSITerminal) EnterAltScreen() error {
	t.esc.Reset()
	t.esc.EnterAltScreen()
	return t.write()
}

// ExitAltScreen switches back to the main screen buffer.
func (t *ANSITerminal) ExitAltScreen() error {
	t.esc.Reset()
	t.esc.ExitAltScreen()
	return t.write()
}
