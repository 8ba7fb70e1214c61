package tui

import (
	"testing"
)

func TestParseInput(t *testing.T) {
	type tc struct {
		input    []byte
		expected []Event
	}

	tests := map[string]tc{
		"printable ascii": {
			input:    []byte("ab"),
			expected: []Event{Char('a'), Char('b')},
		},
		"multi-byte utf8": {
			input:    []byte("é✓"),
			expected: []Event{Char('é'), Char('✓')},
		},
		"enter tab backspace": {
			input:    []byte{0x0d, 0x09, 0x7f},
			expected: []Event{KeyEvent{Key: KeyEnter}, KeyEvent{Key: KeyTab}, KeyEvent{Key: KeyBackspace}},
		},
		"ctrl keys": {
			input:    []byte{0x01, 0x03, 0x15},
			expected: []Event{KeyEvent{Key: KeyCtrlA}, KeyEvent{Key: KeyCtrlC}, KeyEvent{Key: KeyCtrlU}},
		},
		"arrow keys": {
			input: []byte("\x1b[A\x1b[B\x1b[C\x1b[D"),
			expected: []Event{
				KeyEvent{Key: KeyUp}, KeyEvent{Key: KeyDown},
				KeyEvent{Key: KeyRight}, KeyEvent{Key: KeyLeft},
			},
		},
		"ctrl right": {
			input:    []byte("\x1b[1;5C"),
			expected: []Event{KeyEvent{Key: KeyRight, Mod: ModCtrl}},
		},
		"back tab": {
			input:    []byte("\x1b[Z"),
			expected: []Event{KeyEvent{Key: KeyBackTab, Mod: ModShift}},
		},
		"page keys": {
			input:    []byte("\x1b[5~\x1b[6~"),
			expected: []Event{KeyEvent{Key: KeyPageUp}, KeyEvent{Key: KeyPageDown}},
		},
		"ss3 function key": {
			input:    []byte("\x1bOP"),
			expected: []Event{KeyEvent{Key: KeyF1}},
		},
		"alt rune": {
			input:    []byte("\x1bx"),
			expected: []Event{KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModAlt}},
		},
		"lone escape": {
			input:    []byte{0x1b},
			expected: []Event{KeyEvent{Key: KeyEscape}},
		},
		"unknown tilde sequence is skipped": {
			input:    []byte("\x1b[99~q"),
			expected: []Event{Char('q')},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			events := parseInput(tt.input)
			if len(events) != len(tt.expected) {
				t.Fatalf("parseInput(%q) returned %d events, want %d: %v", tt.input, len(events), len(tt.expected), events)
			}
			for i := range events {
				if events[i] != tt.expected[i] {
					t.Errorf("event %d = %#v, want %#v", i, events[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseInputWithRemainder_SplitsIncompleteUTF8(t *testing.T) {
	data := []byte("a✓")
	events, rest := parseInputWithRemainder(data[:len(data)-1])
	if len(events) != 1 || events[0] != Char('a') {
		t.Fatalf("events = %v, want [a]", events)
	}
	if len(rest) != 2 {
		t.Fatalf("remainder = %d bytes, want 2", len(rest))
	}

	events, rest = parseInputWithRemainder(append(rest, data[len(data)-1]))
	if len(events) != 1 || events[0] != Char('✓') {
		t.Errorf("events = %v, want [✓]", events)
	}
	if len(rest) != 0 {
		t.Errorf("remainder = %v, want empty", rest)
	}
}

func TestDecodeModifier(t *testing.T) {
	type tc struct {
		param    int
		expected Modifier
	}

	tests := map[string]tc{
		"none":       {param: 1, expected: ModNone},
		"shift":      {param: 2, expected: ModShift},
		"alt":        {param: 3, expected: ModAlt},
		"ctrl":       {param: 5, expected: ModCtrl},
		"ctrl+shift": {param: 6, expected: ModCtrl | ModShift},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := decodeModifier(tt.param); got != tt.expected {
				t.Errorf("decodeModifier(%d) = %v, want %v", tt.param, got, tt.expected)
			}
		})
	}
}
