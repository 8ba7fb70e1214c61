package tui

// Terminal abstracts terminal operations for rendering. Only the frontend
// loop writes to it.
type Terminal interface {
	// Size returns the terminal dimensions (width, height) in cells.
	Size() (width, height int)

	// Flush writes the given cell changes to the terminal.
	// Changes are expected to be in row-major order.
	Flush(changes []CellChange) error

	// Clear clears the entire terminal screen.
	Clear() error

	// ClearToEnd clears from the cursor to the end of the screen.
	ClearToEnd() error

	// SetCursor moves the cursor to the specified position (0-indexed).
	SetCursor(x, y int) error

	HideCursor() error
	ShowCursor() error

	// CursorPosition reports the 0-indexed cursor position. It is called in
	// raw mode before input is read.
	CursorPosition() (x, y int, err error)

	// ReserveRows scrolls the screen so that n rows starting at the cursor
	// row are available, leaving the cursor at the start of the block.
	ReserveRows(n int) error

	// EnterRawMode puts the terminal into raw mode for character-by-character input.
	EnterRawMode() error

	// ExitRawMode restores the mode saved by EnterRawMode.
	ExitRawMode() error

	EnterAltScreen() error
	ExitAltScreen() error
}
