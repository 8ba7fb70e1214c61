package tui

import (
	"testing"
)

func TestBuffer_SetString(t *testing.T) {
	type tc struct {
		x             int
		text          string
		expectedLine  string
		expectedWidth int
	}

	tests := map[string]tc{
		"ascii":                {x: 0, text: "hello", expectedLine: "hello", expectedWidth: 5},
		"truncated at edge":    {x: 5, text: "hello", expectedLine: "     hel", expectedWidth: 3},
		"wide characters":      {x: 0, text: "日本", expectedLine: "日本", expectedWidth: 4},
		"wide char at the end": {x: 7, text: "日", expectedLine: "", expectedWidth: 0},
		"negative start":       {x: -2, text: "abcd", expectedLine: "cd", expectedWidth: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(8, 1)
			width := buf.SetString(tt.x, 0, tt.text, NewStyle())
			if width != tt.expectedWidth {
				t.Errorf("SetString() width = %d, want %d", width, tt.expectedWidth)
			}
			if got := buf.StringTrimmed(); got != tt.expectedLine {
				t.Errorf("buffer = %q, want %q", got, tt.expectedLine)
			}
		})
	}
}

func TestBuffer_SetLine(t *testing.T) {
	type tc struct {
		text     string
		expected string
	}

	tests := map[string]tc{
		"fits":      {text: "abc", expected: "[abc   ]"},
		"truncated": {text: "abcdefghij", expected: "[abcde…]"},
		"empty":     {text: "", expected: "[      ]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(8, 1)
			buf.SetString(0, 0, "[xxxxxx]", NewStyle())
			buf.SetLine(NewRect(1, 0, 6, 1), tt.text, NewStyle())
			if got := buf.String(); got != tt.expected {
				t.Errorf("buffer = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuffer_DiffAndSwap(t *testing.T) {
	buf := NewBuffer(4, 2)
	if changes := buf.Diff(); len(changes) != 0 {
		t.Fatalf("fresh buffer has %d changes", len(changes))
	}

	buf.SetRune(1, 1, 'x', NewStyle())
	buf.SetRune(3, 0, 'y', NewStyle())
	changes := buf.Diff()
	if len(changes) != 2 {
		t.Fatalf("Diff() = %d changes, want 2", len(changes))
	}
	if changes[0].Y != 0 || changes[0].X != 3 {
		t.Errorf("changes are not in row-major order: %+v", changes)
	}

	buf.Swap()
	if changes := buf.Diff(); len(changes) != 0 {
		t.Errorf("Diff() after Swap = %d changes, want 0", len(changes))
	}
}

func TestBuffer_ClearRectRemovesWideCharHalves(t *testing.T) {
	buf := NewBuffer(6, 1)
	buf.SetString(0, 0, "日本", NewStyle())

	buf.ClearRect(NewRect(1, 0, 1, 1))

	if got := buf.StringTrimmed(); got != "  本" {
		t.Errorf("buffer = %q, want %q", got, "  本")
	}
}

func TestBuffer_ResizeKeepsOverlap(t *testing.T) {
	buf := NewBuffer(4, 2)
	buf.SetString(0, 0, "abcd", NewStyle())
	buf.SetString(0, 1, "efgh", NewStyle())

	buf.Resize(2, 3)

	if w, h := buf.Size(); w != 2 || h != 3 {
		t.Fatalf("Size() = %dx%d, want 2x3", w, h)
	}
	if got := buf.StringTrimmed(); got != "ab\nef\n" {
		t.Errorf("buffer = %q, want %q", got, "ab\nef\n")
	}

	buf.Resize(-1, 2)
	if buf.Width() != 0 {
		t.Errorf("negative width kept: %d", buf.Width())
	}
}
