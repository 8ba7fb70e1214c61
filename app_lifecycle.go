package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// start acquires the terminal. On failure everything acquired so far is
// released before returning.
func (a *App[S, M, R]) start() (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(err, a.restore())
		}
	}()

	if a.settings.theme != nil {
		a.theme = *a.settings.theme
	} else {
		// Queried before raw mode so the background probe can read its reply.
		a.theme = DefaultTheme()
	}

	var out io.Writer = os.Stdout
	in := os.Stdin
	if a.settings.tty != nil {
		out, in = a.settings.tty, a.settings.tty
	}

	a.term = a.settings.term
	if a.term == nil {
		a.term = NewANSITerminal(out, in)
	}

	if err := a.term.EnterRawMode(); err != nil {
		return err
	}
	a.acquired.rawMode = true

	width, termHeight := a.term.Size()
	vp := a.settings.viewport
	if vp.IsInline() {
		rows := vp.rows(termHeight)
		cursorRow := termHeight
		if _, y, err := a.term.CursorPosition(); err != nil {
			// Without a reply the viewport takes the bottom rows.
			debug.Logger().Warn("cursor position unknown", "err", err)
		} else {
			cursorRow = y
		}
		if err := a.term.ReserveRows(rows); err != nil {
			return fmt.Errorf("reserve inline rows: %w", err)
		}
		a.acquired.inlineRows = true
		a.startRow = vp.startRow(cursorRow, termHeight)
	} else {
		if err := a.term.EnterAltScreen(); err != nil {
			return fmt.Errorf("enter alternate screen: %w", err)
		}
		a.acquired.altScreen = true
		a.startRow = 0
	}

	if !a.settings.cursorVisible {
		if err := a.term.HideCursor(); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
		a.acquired.cursor = true
	}

	a.reader = a.settings.reader
	if a.reader == nil {
		r, err := NewEventReader(in)
		if err != nil {
			return err
		}
		a.reader = r
	}

	a.buffer = NewBuffer(width, vp.rows(termHeight))
	// The screen content is unknown until the first frame paints every cell.
	a.needsFullRedraw = true

	debug.Logger().Debug("started", "viewport", vp, "width", width, "height", termHeight, "startRow", a.startRow)
	return nil
}

// restore releases the terminal resources taken by start. It runs once;
// later calls return the first result. Every step is attempted even if an
// earlier one fails.
func (a *App[S, M, R]) restore() error {
	a.restoreOnce.Do(func() {
		var errs []error
		if a.reader != nil {
			if err := a.reader.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close input: %w", err))
			}
		}
		if a.acquired.cursor {
			if err := a.term.ShowCursor(); err != nil {
				errs = append(errs, fmt.Errorf("show cursor: %w", err))
			}
		}
		if a.acquired.altScreen {
			if err := a.term.ExitAltScreen(); err != nil {
				errs = append(errs, fmt.Errorf("exit alternate screen: %w", err))
			}
		}
		if a.acquired.inlineRows {
			// Leave the cursor where the viewport began, with the region blank.
			if err := a.term.SetCursor(0, a.startRow); err != nil {
				errs = append(errs, fmt.Errorf("clear inline viewport: %w", err))
			} else if err := a.term.ClearToEnd(); err != nil {
				errs = append(errs, fmt.Errorf("clear inline viewport: %w", err))
			}
		}
		if a.acquired.rawMode {
			if err := a.term.ExitRawMode(); err != nil {
				errs = append(errs, err)
			}
		}
		a.restoreErr = errors.Join(errs...)
		debug.Logger().Debug("terminal restored", "err", a.restoreErr)
	})
	return a.restoreErr
}
