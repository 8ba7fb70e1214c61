package tui

// Render flushes the cells that changed since the last commit and swaps
// the buffers.
func Render(term Terminal, buf *Buffer) error {
	return renderAt(term, buf, 0, false)
}

// RenderFull clears the screen and sends every cell regardless of whether
// it changed. Use it after startup, resize, or anything that may have
// corrupted the screen.
func RenderFull(term Terminal, buf *Buffer) error {
	return renderAt(term, buf, 0, true)
}

// renderAt commits buf with its rows shifted down by rowOffset. A full
// render with an offset clears only the region from rowOffset down, which
// is what inline viewports own.
func renderAt(term Terminal, buf *Buffer, rowOffset int, full bool) error {
	var changes []CellChange
	if full {
		width, height := buf.Size()
		changes = make([]CellChange, 0, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				changes = append(changes, CellChange{X: x, Y: y, Cell: buf.Cell(x, y)})
			}
		}
		if rowOffset > 0 {
			if err := term.SetCursor(0, rowOffset); err != nil {
				return err
			}
			if err := term.ClearToEnd(); err != nil {
				return err
			}
		} else if err := term.Clear(); err != nil {
			return err
		}
	} else {
		changes = buf.Diff()
	}

	if rowOffset != 0 {
		for i := range changes {
			changes[i].Y += rowOffset
		}
	}
	if len(changes) > 0 {
		if err := term.Flush(changes); err != nil {
			return err
		}
	}
	buf.Swap()
	return nil
}
