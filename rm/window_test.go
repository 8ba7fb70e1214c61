package rm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	tui "github.com/radicle-dev/radicle-tui"
)

type browserState struct {
	page    string
	patches []string
	issues  []string
}

type browserMsg struct {
	op       string
	selected int
}

var _ tui.View[browserState, browserMsg] = (*Window[browserState, browserMsg])(nil)

func newBrowser() (*Window[browserState, browserMsg], *Panes[browserState, browserMsg]) {
	patches := NewList[browserState, browserMsg]().
		OnUpdate(func(s browserState) ListProps {
			rows := make([][]string, len(s.patches))
			for i, p := range s.patches {
				rows[i] = []string{fmt.Sprint(i), p}
			}
			return ListProps{
				Columns: []tui.Column{
					{Text: "#", Width: tui.Length(3)},
					{Text: "title", Width: tui.Fill(1)},
				},
				Rows:   rows,
				Header: true,
			}
		}).
		OnKey(func(ev ListEvent) (browserMsg, bool) {
			if ev.Key.Key == tui.KeyEnter && ev.Selected >= 0 {
				return browserMsg{op: "show", selected: ev.Selected}, true
			}
			return browserMsg{}, false
		})
	issues := NewList[browserState, browserMsg]().
		OnUpdate(func(s browserState) ListProps {
			rows := make([][]string, len(s.issues))
			for i, is := range s.issues {
				rows[i] = []string{is}
			}
			return ListProps{Rows: rows, Empty: "no issues"}
		})
	title := NewLabel[browserState, browserMsg](LabelProps{Text: "browse"})

	panes := NewPanes(tui.Horizontal, nil,
		Widget[browserState, browserMsg](NewContainer[browserState, browserMsg](patches, ContainerProps{Title: "Patches", Footer: "2 open"})),
		Widget[browserState, browserMsg](NewContainer[browserState, browserMsg](issues, ContainerProps{Title: "Issues"})),
	)
	page := NewPanes(tui.Vertical, []tui.Constraint{tui.Length(1), tui.Fill(1)},
		Widget[browserState, browserMsg](title),
		Widget[browserState, browserMsg](panes),
	)

	w := NewWindow[browserState, browserMsg](func(s browserState) string { return s.page }).
		Page("browse", page).
		Page("help", NewLabel[browserState, browserMsg](LabelProps{Text: "help page"})).
		OnKey(func(ke tui.KeyEvent, _ browserState) (browserMsg, bool) {
			if ke.IsChar('q') {
				return browserMsg{op: "quit"}, true
			}
			return browserMsg{}, false
		})
	return w, panes
}

type windowHarness struct {
	w      *Window[browserState, browserMsg]
	buf    *tui.Buffer
	sender tui.Sender[browserMsg]
	rx     *tui.Receiver[browserMsg]
}

func (h *windowHarness) frame(s browserState, keys ...tui.KeyEvent) *tui.Context[browserState, browserMsg] {
	h.buf.Clear()
	ctx := tui.NewContext(s, h.sender, h.buf, keys...)
	h.w.Draw(ctx)
	ctx.EndFrame()
	return ctx
}

func (h *windowHarness) messages() []browserMsg {
	var out []browserMsg
	for {
		m, ok := h.rx.TryRecv()
		if !ok {
			return out
		}
		out = append(out, m)
	}
}

func newWindowHarness(t *testing.T, width, height int) (*windowHarness, *Panes[browserState, browserMsg]) {
	w, panes := newBrowser()
	sender, rx := tui.NewChannel[browserMsg]()
	t.Cleanup(func() { rx.Close() })
	return &windowHarness{w: w, buf: tui.NewBuffer(width, height), sender: sender, rx: rx}, panes
}

func TestWindow_RendersSelectedPage(t *testing.T) {
	h, _ := newWindowHarness(t, 60, 12)
	state := browserState{page: "browse", patches: []string{"fix crash", "add docs"}}

	h.frame(state)
	screen := h.buf.StringTrimmed()
	require.True(t, strings.HasPrefix(screen, "browse"))
	require.Contains(t, screen, "Patches")
	require.Contains(t, screen, "fix crash")
	require.Contains(t, screen, "2 open")
	require.Contains(t, screen, "no issues")

	state.page = "help"
	h.frame(state)
	require.Equal(t, "help", h.w.Shown())
	require.True(t, strings.HasPrefix(h.buf.StringTrimmed(), "help page"))
}

func TestWindow_KeysReachFocusedListThenWindow(t *testing.T) {
	h, _ := newWindowHarness(t, 60, 12)
	state := browserState{page: "browse", patches: []string{"a", "b", "c"}}

	ctx := h.frame(state, tui.KeyEvent{Key: tui.KeyDown}, tui.KeyEvent{Key: tui.KeyEnter}, tui.Char('q'), tui.Char('x'))

	require.Equal(t, []browserMsg{{op: "show", selected: 1}, {op: "quit"}}, h.messages())
	require.Equal(t, 1, ctx.Discarded(), "x is not handled by anyone")
}

func TestWindow_TabCyclesFocusablePanes(t *testing.T) {
	h, panes := newWindowHarness(t, 60, 12)
	state := browserState{
		page:    "browse",
		patches: []string{"a"},
		issues:  []string{"bug"},
	}

	h.frame(state)
	require.Equal(t, 0, panes.FocusedChild())

	// The title is not focusable, so Tab moves focus inside the inner panes.
	h.frame(state, tui.KeyEvent{Key: tui.KeyTab})
	require.Equal(t, 1, panes.FocusedChild())

	h.frame(state, tui.KeyEvent{Key: tui.KeyTab})
	require.Equal(t, 0, panes.FocusedChild(), "wraps around")

	state.issues = nil
	h.frame(state, tui.KeyEvent{Key: tui.KeyTab})
	require.Equal(t, 0, panes.FocusedChild(), "empty lists are skipped")
}

func TestList_HidesColumnsBelowBreakpoint(t *testing.T) {
	list := NewList[int, int]()
	list.OnUpdate(func(int) ListProps {
		return ListProps{
			Columns: []tui.Column{
				{Text: "title", Width: tui.Fill(1)},
				{Text: "author", Width: tui.Length(10), MinWidth: tui.BreakpointXSmall},
			},
			Rows: [][]string{{"fix", "alice"}},
		}
	})
	list.Update(0)

	narrow := tui.NewBuffer(30, 2)
	list.Render(narrow, RenderProps{Area: narrow.Rect(), Theme: tui.NewTheme(true)})
	require.NotContains(t, narrow.String(), "alice")

	wide := tui.NewBuffer(80, 2)
	list.Render(wide, RenderProps{Area: wide.Rect(), Theme: tui.NewTheme(true)})
	require.Contains(t, wide.String(), "alice")
}

func TestList_Navigation(t *testing.T) {
	type tc struct {
		keys []tui.KeyEvent
		want int
	}

	tests := map[string]tc{
		"down":          {keys: []tui.KeyEvent{{Key: tui.KeyDown}}, want: 1},
		"j twice":       {keys: []tui.KeyEvent{tui.Char('j'), tui.Char('j')}, want: 2},
		"end then up":   {keys: []tui.KeyEvent{{Key: tui.KeyEnd}, tui.Char('k')}, want: 8},
		"up at the top": {keys: []tui.KeyEvent{{Key: tui.KeyUp}}, want: 0},
		"page down":     {keys: []tui.KeyEvent{{Key: tui.KeyPageDown}}, want: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			list := NewList[int, int]().OnUpdate(func(int) ListProps {
				rows := make([][]string, 10)
				for i := range rows {
					rows[i] = []string{fmt.Sprint(i)}
				}
				return ListProps{Rows: rows}
			})
			list.Update(0)
			buf := tui.NewBuffer(10, 4)
			list.Render(buf, RenderProps{Area: buf.Rect(), Theme: tui.NewTheme(true)})

			for _, ke := range tt.keys {
				require.True(t, list.HandleKey(ke, func(int) {}))
			}
			require.Equal(t, tt.want, list.Selected())
		})
	}
}
