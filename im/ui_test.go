package im

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	tui "github.com/radicle-dev/radicle-tui"
)

type counterMsg int

const (
	increment counterMsg = iota
	quit
)

func counterView(ui *Ui[int, counterMsg]) {
	ui.Label(fmt.Sprintf("count: %d", ui.State()))
	ui.OnKey(tui.RuneOf('+'), func(tui.KeyEvent) { ui.Send(increment) })
	ui.OnKey(tui.RuneOf('q'), func(tui.KeyEvent) { ui.Send(quit) })
}

func TestUi_CounterSendsThroughChannel(t *testing.T) {
	h := newHarness(t, 20, 3, counterView)

	h.frame(0, tui.Char('+'))
	require.Equal(t, []counterMsg{increment}, h.messages())

	h.frame(1, tui.Char('q'))
	require.Equal(t, []counterMsg{quit}, h.messages())
	require.Contains(t, h.screen(), "count: 1")
}

func TestUi_GlobalHandlersFirstMatchWins(t *testing.T) {
	var got []string
	h := newHarness(t, 20, 3, func(ui *Ui[int, counterMsg]) {
		ui.OnKey(tui.AnyRune(), func(ke tui.KeyEvent) { got = append(got, "any:"+ke.String()) })
		ui.OnKey(tui.RuneOf('x'), func(tui.KeyEvent) { got = append(got, "x") })
		ui.OnKey(tui.KeyOf(tui.KeyEnter), func(tui.KeyEvent) { got = append(got, "enter") })
	})

	ctx := h.frame(0, tui.Char('x'), key(tui.KeyEnter), key(tui.KeyEscape), tui.Char('y'))

	require.Equal(t, []string{"any:x", "enter", "any:y"}, got)
	require.Equal(t, 1, ctx.Discarded(), "escape had no handler")
}

func TestUi_FocusedWidgetClaimsBeforeGlobals(t *testing.T) {
	type tc struct {
		focus      int
		wantGlobal int
		wantSel    int
	}

	tests := map[string]tc{
		"focused list takes down": {
			focus:      0,
			wantGlobal: 0,
			wantSel:    2,
		},
		"unfocused list leaves down to globals": {
			focus:      NoFocus,
			wantGlobal: 2,
			wantSel:    0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			globals, selected := 0, -1
			h := newHarness(t, 20, 10, func(ui *Ui[int, counterMsg]) {
				ui.Layout(Vertical(tui.Fill(1)), tt.focus, func(ui *Ui[int, counterMsg]) {
					selected, _ = ui.List([]string{"a", "b", "c", "d"}, BordersNone)
				})
				ui.OnKey(tui.KeyOf(tui.KeyDown), func(tui.KeyEvent) { globals++ })
			})

			h.frame(0, keys(tui.KeyDown, 2)...)

			require.Equal(t, tt.wantGlobal, globals)
			require.Equal(t, tt.wantSel, selected)
		})
	}
}

func TestUi_EachEventClaimedOnce(t *testing.T) {
	var first, second []int
	h := newHarness(t, 20, 10, func(ui *Ui[int, counterMsg]) {
		ui.Layout(Vertical(tui.Fill(1), tui.Fill(1)), 0, func(ui *Ui[int, counterMsg]) {
			s, _ := ui.List([]string{"a", "b", "c"}, BordersNone)
			first = append(first, s)
			s, _ = ui.List([]string{"a", "b", "c"}, BordersNone)
			second = append(second, s)
		})
	})

	h.frame(0, key(tui.KeyDown))
	h.frame(0, key(tui.KeyDown))

	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{0, 0}, second, "only the focused list moves")
}

func TestUi_UnclaimedInputIsDropped(t *testing.T) {
	var pending []int
	h := newHarness(t, 20, 3, func(ui *Ui[int, counterMsg]) {
		pending = append(pending, len(ui.Context().Pending()))
		ui.Label("idle")
	})

	ctx := h.frame(0, tui.Char('z'), tui.Char('z'))
	require.Equal(t, 2, ctx.Discarded())

	ctx = h.frame(0)
	require.Zero(t, ctx.Discarded())
	require.Equal(t, []int{2, 0}, pending, "input never carries into the next frame")
}

func TestUi_PanesTabMovesFocus(t *testing.T) {
	type tc struct {
		keys     []tui.KeyEvent
		wantPane int
	}

	tests := map[string]tc{
		"starts on the first pane": {
			wantPane: 0,
		},
		"tab moves right": {
			keys:     keys(tui.KeyTab, 1),
			wantPane: 1,
		},
		"tab stops at the last pane": {
			keys:     keys(tui.KeyTab, 5),
			wantPane: 2,
		},
		"back tab stops at the first pane": {
			keys:     append(keys(tui.KeyTab, 1), keys(tui.KeyBackTab, 3)...),
			wantPane: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var focused []bool
			h := newHarness(t, 60, 10, func(ui *Ui[int, counterMsg]) {
				ui.Panes(Horizontal(tui.Fill(1), tui.Fill(1), tui.Fill(1)), func(ui *Ui[int, counterMsg]) {
					focused = focused[:0]
					for range 3 {
						ui.NextArea()
						focused = append(focused, ui.IsAreaFocused())
					}
				})
			})

			h.frame(0, tt.keys...)

			want := make([]bool, 3)
			want[tt.wantPane] = true
			require.Equal(t, want, focused)
		})
	}
}

func TestUi_PopupTakesFocus(t *testing.T) {
	var changed bool
	h := newHarness(t, 40, 12, func(ui *Ui[int, counterMsg]) {
		ui.Layout(Vertical(tui.Fill(1)), NoFocus, func(ui *Ui[int, counterMsg]) {
			ui.Label(strings.Repeat("x", 40))
		})
		ui.Popup(Popup(50, 50), func(ui *Ui[int, counterMsg]) {
			_, resp := ui.List([]string{"one", "two"}, BordersAll)
			changed = resp.Changed
		})
	})

	h.frame(0, key(tui.KeyDown))

	require.True(t, changed)
	require.Contains(t, h.screen(), "two")
	require.Contains(t, h.screen(), "╭")
}

func TestUi_NextAreaNeverNegative(t *testing.T) {
	sizes := map[string][2]int{
		"empty":      {0, 0},
		"one cell":   {1, 1},
		"one row":    {80, 1},
		"one column": {1, 24},
		"tiny":       {3, 2},
		"normal":     {80, 24},
		"wide":       {200, 50},
	}

	for name, size := range sizes {
		t.Run(name, func(t *testing.T) {
			var areas []tui.Rect
			h := newHarness(t, size[0], size[1], func(ui *Ui[int, counterMsg]) {
				ui.Layout(Vertical(tui.Length(3), tui.Fill(1), tui.Length(1)), 1, func(ui *Ui[int, counterMsg]) {
					ui.Columns([]tui.Column{{Text: "a", Width: tui.Length(10)}, {Text: "b", Width: tui.Fill(1)}}, BordersTop)
					ui.Layout(Expandable3(false), 0, func(ui *Ui[int, counterMsg]) {
						ui.List([]string{"a", "b"}, BordersAll)
						ui.TextView("some\ntext", BordersAll)
						_, _ = ui.TextEdit("search", "", BordersSides)
						areas = append(areas, ui.Area())
					})
					ui.Shortcuts([]Shortcut{{Key: "q", Action: "quit"}}, '∙')
					areas = append(areas, ui.Area())
				})
			})

			// The same tree, drawn before and after the buffer changes size.
			h.frame(0, key(tui.KeyDown))
			h.buf.Resize(size[1], size[0])
			h.frame(0, key(tui.KeyUp))

			for _, a := range areas {
				require.GreaterOrEqual(t, a.Width, 0)
				require.GreaterOrEqual(t, a.Height, 0)
			}
		})
	}
}
