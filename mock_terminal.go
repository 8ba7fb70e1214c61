package tui

import (
	"strings"
	"sync"
)

// MockTerminal is a mock implementation of Terminal for testing.
// It captures all operations and maintains an internal screen for
// verification. It is safe for concurrent use so tests can inspect it
// while an App is running.
type MockTerminal struct {
	mu            sync.Mutex
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	inRawMode     bool
	inAltScreen   bool
	flushErr      error
	cursorErr     error
	flushes       int

	// Transition counters for testing screen mode switches
	rawEnterCount       int
	rawExitCount        int
	altScreenEnterCount int
	altScreenExitCount  int
	reservedRows        int
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{
		width:  width,
		height: height,
	}
	m.cells = blankGrid(width * height)
	return m
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width, m.height
}

// Flush applies the given cell changes to the mock screen.
func (m *MockTerminal) Flush(changes []CellChange) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.flushErr != nil {
		return m.flushErr
	}
	m.flushes++
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
	return nil
}

// Clear clears the entire terminal to spaces with default style.
func (m *MockTerminal) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells = blankGrid(m.width * m.height)
	m.cursorX, m.cursorY = 0, 0
	return nil
}

// ClearToEnd clears from cursor position to end of screen.
func (m *MockTerminal) ClearToEnd() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := max(m.cursorY*m.width+m.cursorX, 0); i < len(m.cells); i++ {
		m.cells[i] = blankCell
	}
	return nil
}

// SetCursor moves the cursor to the specified position.
func (m *MockTerminal) SetCursor(x, y int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorX, m.cursorY = x, y
	return nil
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = true
	return nil
}

// ShowCursor makes the cursor visible.
func (m *MockTerminal) ShowCursor() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = false
	return nil
}

// CursorPosition returns the cursor set by SetCursor or the last
// operation that moved it.
func (m *MockTerminal) CursorPosition() (x, y int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cursorErr != nil {
		return 0, 0, m.cursorErr
	}
	return m.cursorX, m.cursorY, nil
}

// ReserveRows records the reservation. Like a real terminal it scrolls
// the screen up when the rows run past the bottom and moves the cursor to
// column 0 of the first reserved row.
func (m *MockTerminal) ReserveRows(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservedRows += n
	if n <= 0 {
		return nil
	}
	if scroll := min(m.cursorY+n-m.height, m.height); scroll > 0 {
		copy(m.cells, m.cells[scroll*m.width:])
		for i := (m.height - scroll) * m.width; i < len(m.cells); i++ {
			m.cells[i] = blankCell
		}
		m.cursorY -= scroll
	}
	m.cursorX, m.cursorY = 0, max(m.cursorY, 0)
	return nil
}

// EnterRawMode simulates entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inRawMode = true
	m.rawEnterCount++
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inRawMode = false
	m.rawExitCount++
	return nil
}

// EnterAltScreen simulates entering the alternate screen buffer.
func (m *MockTerminal) EnterAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inAltScreen = true
	m.altScreenEnterCount++
	return nil
}

// ExitAltScreen simulates exiting the alternate screen buffer.
func (m *MockTerminal) ExitAltScreen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inAltScreen = false
	m.altScreenExitCount++
	return nil
}

// --- Test helper methods ---

// FailFlush makes every later Flush return err. Pass nil to recover.
func (m *MockTerminal) FailFlush(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushErr = err
}

// FailCursorPosition makes CursorPosition return err, as a terminal that
// never answers the request would. Pass nil to recover.
func (m *MockTerminal) FailCursorPosition(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorErr = err
}

// Cursor returns the current cursor position.
func (m *MockTerminal) Cursor() (x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorX, m.cursorY
}

// Flushes returns the number of successful Flush calls.
func (m *MockTerminal) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// CellAt returns the cell at the given position.
// Returns an empty Cell if out of bounds.
func (m *MockTerminal) CellAt(x, y int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// String renders the screen to a string for snapshot testing, one line per
// row with trailing spaces removed.
func (m *MockTerminal) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	lines := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		var line strings.Builder
		for x := 0; x < m.width; x++ {
			cell := m.cells[y*m.width+x]
			switch {
			case cell.IsContinuation():
			case cell.Rune == 0:
				line.WriteRune(' ')
			default:
				line.WriteRune(cell.Rune)
			}
		}
		lines[y] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Line returns row y of String.
func (m *MockTerminal) Line(y int) string {
	lines := strings.Split(m.String(), "\n")
	if y < 0 || y >= len(lines) {
		return ""
	}
	return lines[y]
}

// IsCursorHidden returns whether the cursor is hidden.
func (m *MockTerminal) IsCursorHidden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorHidden
}

// IsInRawMode returns whether the terminal is in raw mode.
func (m *MockTerminal) IsInRawMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inRawMode
}

// IsInAltScreen returns whether the terminal is using the alternate screen buffer.
func (m *MockTerminal) IsInAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inAltScreen
}

// RawModeCounts returns how often raw mode was entered and exited.
func (m *MockTerminal) RawModeCounts() (enter, exit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rawEnterCount, m.rawExitCount
}

// AltScreenCounts returns how often the alternate screen was entered and exited.
func (m *MockTerminal) AltScreenCounts() (enter, exit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.altScreenEnterCount, m.altScreenExitCount
}

// ReservedRows returns the total number of rows reserved for inline mode.
func (m *MockTerminal) ReservedRows() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reservedRows
}

// Resize changes the terminal dimensions, preserving content where possible.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cells := blankGrid(width * height)
	for y := 0; y < min(height, m.height); y++ {
		for x := 0; x < min(width, m.width); x++ {
			cells[y*width+x] = m.cells[y*m.width+x]
		}
	}
	m.width, m.height, m.cells = width, height, cells
}
