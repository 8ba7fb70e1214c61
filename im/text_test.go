package im

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	tui "github.com/radicle-dev/radicle-tui"
)

func TestTextEdit_Editing(t *testing.T) {
	type tc struct {
		initial    string
		keys       []tui.KeyEvent
		wantText   string
		wantCursor int
		wantChange bool
	}

	tests := map[string]tc{
		"typing appends": {
			keys:       runes("fix"),
			wantText:   "fix",
			wantCursor: 3,
			wantChange: true,
		},
		"backspace deletes left of the cursor": {
			initial:    "abc",
			keys:       []tui.KeyEvent{key(tui.KeyLeft), key(tui.KeyBackspace)},
			wantText:   "ac",
			wantCursor: 1,
			wantChange: true,
		},
		"delete removes under the cursor": {
			initial:    "abc",
			keys:       []tui.KeyEvent{key(tui.KeyHome), key(tui.KeyDelete)},
			wantText:   "bc",
			wantCursor: 0,
			wantChange: true,
		},
		"insert in the middle": {
			initial:    "ac",
			keys:       []tui.KeyEvent{key(tui.KeyLeft), tui.Char('b')},
			wantText:   "abc",
			wantCursor: 2,
			wantChange: true,
		},
		"ctrl-u clears to the start": {
			initial:    "hello world",
			keys:       append(keys(tui.KeyLeft, 5), key(tui.KeyCtrlU)),
			wantText:   "world",
			wantCursor: 0,
			wantChange: true,
		},
		"moving only is not a change": {
			initial:    "abc",
			keys:       []tui.KeyEvent{key(tui.KeyLeft), key(tui.KeyRight), key(tui.KeyEnd)},
			wantText:   "abc",
			wantCursor: 3,
		},
		"backspace at the start does nothing": {
			initial:    "abc",
			keys:       []tui.KeyEvent{key(tui.KeyHome), key(tui.KeyBackspace)},
			wantText:   "abc",
			wantCursor: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var (
				text string
				resp Response
			)
			h := newHarness(t, 40, 2, func(ui *Ui[int, counterMsg]) {
				text, resp = ui.TextEdit("Search", tt.initial, BordersNone)
			})

			h.frame(0, tt.keys...)

			require.Equal(t, tt.wantText, text)
			require.Equal(t, tt.wantChange, resp.Changed)
			st, _ := h.root.States().Get("0")
			require.Equal(t, tt.wantCursor, st.Cursor)
			require.Contains(t, h.screen(), " Search  "+tt.wantText)
		})
	}
}

func TestTextEdit_KeepsTextAcrossFrames(t *testing.T) {
	var text string
	h := newHarness(t, 40, 2, func(ui *Ui[int, counterMsg]) {
		text, _ = ui.TextEdit("", "initial is only used once", BordersNone)
	})

	h.frame(0, key(tui.KeyCtrlU))
	h.frame(0, runes("ab")...)
	h.frame(0, tui.Char('c'))

	require.Equal(t, "abc", text)
}

func TestTextEdit_HidesRunesFromGlobals(t *testing.T) {
	quits := 0
	h := newHarness(t, 40, 2, func(ui *Ui[int, counterMsg]) {
		ui.TextEdit("", "", BordersNone)
		ui.OnKey(tui.RuneOf('q'), func(tui.KeyEvent) { quits++ })
		ui.OnKey(tui.KeyOf(tui.KeyEscape), func(tui.KeyEvent) { quits++ })
	})

	h.frame(0, tui.Char('q'), key(tui.KeyEscape))

	require.Equal(t, 1, quits, "only escape reaches the globals")
}

func TestTextView_Scrolling(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d %s", i, strings.Repeat("-", 40))
	}
	text := strings.Join(lines, "\n")

	type tc struct {
		keys       []tui.KeyEvent
		wantOffset int
		wantColumn int
	}

	tests := map[string]tc{
		"down scrolls one row": {
			keys:       runes("jj"),
			wantOffset: 2,
		},
		"end shows the last page": {
			keys:       keys(tui.KeyEnd, 1),
			wantOffset: 22,
		},
		"page down": {
			keys:       keys(tui.KeyPageDown, 1),
			wantOffset: 8,
		},
		"right scrolls by three columns": {
			keys:       runes("ll"),
			wantColumn: 6,
		},
		"left stops at zero": {
			keys:       runes("lhhh"),
			wantColumn: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 30, 8, func(ui *Ui[int, counterMsg]) {
				ui.TextView(text, BordersNone)
			})

			h.frame(0)
			h.frame(0, tt.keys...)

			st, _ := h.root.States().Get("0")
			require.Equal(t, tt.wantOffset, st.Offset)
			require.Equal(t, tt.wantColumn, st.Column)
			require.LessOrEqual(t, st.Offset+st.Height, len(lines))
		})
	}
}

func TestCenteredText(t *testing.T) {
	h := newHarness(t, 11, 3, func(ui *Ui[int, counterMsg]) {
		ui.CenteredText("hi", BordersNone)
	})

	h.frame(0)

	require.Equal(t, "\n    hi\n", h.screen())
}
