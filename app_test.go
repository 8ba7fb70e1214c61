package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type counterMsg int

const (
	msgInc counterMsg = iota
	msgQuit
)

func reduceCounter(s *int, msg counterMsg) *Exit[int] {
	switch msg {
	case msgInc:
		*s++
	case msgQuit:
		return ExitWith(*s)
	}
	return nil
}

// counterView sends msgInc for '+' and msgQuit for 'q' and records what
// every frame saw.
type counterView struct {
	mu      sync.Mutex
	frames  int
	pending [][]KeyEvent
	width   int
	drawn   []int
}

func (v *counterView) Draw(ctx *Context[int, counterMsg]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.frames++
	v.pending = append(v.pending, ctx.Pending())
	v.width = ctx.Area().Width
	v.drawn = append(v.drawn, ctx.State())

	for range ctx.ClaimAll(Matcher(RuneOf('+'))) {
		ctx.Send(msgInc)
	}
	if _, ok := ctx.Claim(Matcher(RuneOf('q'))); ok {
		ctx.Send(msgQuit)
	}
	ctx.Buffer().SetString(0, 0, "count", ctx.Theme().Text)
}

func newTestApp(t *testing.T, view View[int, counterMsg], events []Event, opts ...AppOption) (*App[int, counterMsg, int], *MockTerminal, *MockEventReader) {
	t.Helper()
	term := NewMockTerminal(40, 10)
	reader := NewMockEventReader(events...)
	opts = append([]AppOption{
		WithTerminal(term),
		WithEventReader(reader),
		WithTheme(NewTheme(true)),
		WithFrameRate(240),
		WithInputLatency(5 * time.Millisecond),
	}, opts...)
	app, err := NewApp(0, reduceCounter, view, opts...)
	require.NoError(t, err)
	return app, term, reader
}

func requireRestored(t *testing.T, term *MockTerminal, reader *MockEventReader) {
	t.Helper()
	enter, exit := term.RawModeCounts()
	require.Equal(t, 1, enter)
	require.Equal(t, 1, exit, "raw mode left exactly once")
	require.False(t, term.IsInRawMode())
	require.False(t, term.IsInAltScreen())
	require.False(t, term.IsCursorHidden())
	require.True(t, reader.Closed())
}

func TestApp_ReducerExit(t *testing.T) {
	view := &counterView{}
	app, term, reader := newTestApp(t, view, []Event{Char('+'), Char('+'), Char('q')})

	got, err := app.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 2, *got)
	require.Equal(t, PhaseStopped, app.Phase())
	requireRestored(t, term, reader)

	enter, exit := term.AltScreenCounts()
	require.Equal(t, 1, enter)
	require.Equal(t, 1, exit)
}

func TestApp_Interrupt(t *testing.T) {
	type tc struct {
		events []Event
	}

	tests := map[string]tc{
		"ctrl-c":  {events: []Event{KeyEvent{Key: KeyCtrlC}}},
		"signal":  {events: []Event{InterruptEvent{Signal: "interrupt"}}},
		"sigterm": {events: []Event{Char('+'), InterruptEvent{Signal: "terminated"}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, term, reader := newTestApp(t, &counterView{}, tt.events)

			got, err := app.Run(context.Background())
			require.NoError(t, err)
			require.Nil(t, got, "interrupts carry no value")
			requireRestored(t, term, reader)
		})
	}
}

func TestApp_CtrlCAsInput(t *testing.T) {
	view := ViewFunc[int, counterMsg](func(ctx *Context[int, counterMsg]) {
		if _, ok := ctx.Claim(Matcher(KeyOf(KeyCtrlC))); ok {
			ctx.Send(msgQuit)
		}
	})
	app, _, _ := newTestApp(t, view, []Event{KeyEvent{Key: KeyCtrlC}}, WithoutCtrlC())

	got, err := app.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got, "the view handled ctrl-c and the reducer exited")
}

func TestApp_FlushErrorRestores(t *testing.T) {
	app, term, reader := newTestApp(t, &counterView{}, nil)
	term.FailFlush(errors.New("EIO"))

	got, err := app.Run(context.Background())
	require.ErrorContains(t, err, "EIO")
	require.Nil(t, got)
	requireRestored(t, term, reader)
}

func TestApp_ContextCancel(t *testing.T) {
	app, term, reader := newTestApp(t, &counterView{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	got, err := app.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded, "the app never stops on its own")
	require.Nil(t, got)
	requireRestored(t, term, reader)
}

func TestApp_RunsOnce(t *testing.T) {
	app, _, _ := newTestApp(t, &counterView{}, []Event{Char('q')})

	_, err := app.Run(context.Background())
	require.NoError(t, err)

	_, err = app.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestApp_UnclaimedInputSeenByOneFrame(t *testing.T) {
	view := &counterView{}
	app, _, reader := newTestApp(t, view, []Event{Char('x'), Char('+')})

	go func() {
		for reader.Remaining() > 0 {
			time.Sleep(time.Millisecond)
		}
		time.Sleep(20 * time.Millisecond)
		reader.AddEvents(Char('q'))
	}()

	got, err := app.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, *got)

	seen := 0
	for _, pending := range view.pending {
		for _, ke := range pending {
			if ke == Char('x') {
				seen++
			}
		}
	}
	require.Equal(t, 1, seen, "unclaimed input is dropped after its frame")
}

func TestApp_StateIsSnapshotPerFrame(t *testing.T) {
	view := &counterView{}
	app, _, _ := newTestApp(t, view, []Event{Char('+'), Char('+'), Char('+'), Char('q')})

	got, err := app.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, *got)

	require.Equal(t, 0, view.drawn[0], "first frame shows the initial state")
	for i := 1; i < len(view.drawn); i++ {
		require.GreaterOrEqual(t, view.drawn[i], view.drawn[i-1], "frames never go back in time")
	}
}

func TestApp_Resize(t *testing.T) {
	view := &counterView{}
	app, _, _ := newTestApp(t, view, []Event{ResizeEvent{Width: 25, Height: 4}, Char('q')})

	_, err := app.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 25, view.width)
}

func TestApp_InlineViewport(t *testing.T) {
	app, term, reader := newTestApp(t, &counterView{}, []Event{Char('q')}, WithViewport(Inline(3)))

	_, err := app.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, term.ReservedRows())

	enter, _ := term.AltScreenCounts()
	require.Zero(t, enter, "inline apps keep the primary screen")
	requireRestored(t, term, reader)
}

func TestApp_InlineViewportStartsAtCursor(t *testing.T) {
	type tc struct {
		cursorRow int
		noReply   bool
		wantRow   int
	}

	tests := map[string]tc{
		"top of screen":      {cursorRow: 0, wantRow: 0},
		"middle of screen":   {cursorRow: 4, wantRow: 4},
		"fits exactly":       {cursorRow: 7, wantRow: 7},
		"scrolls at bottom":  {cursorRow: 9, wantRow: 7},
		"no cursor position": {cursorRow: 2, noReply: true, wantRow: 7},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, term, reader := newTestApp(t, &counterView{}, nil, WithViewport(Inline(3)))
			require.NoError(t, term.SetCursor(0, tt.cursorRow))
			if tt.noReply {
				term.FailCursorPosition(errors.New("timeout"))
			}

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				_, err := app.Run(ctx)
				done <- err
			}()

			require.Eventually(t, func() bool {
				return term.Line(tt.wantRow) == "count"
			}, time.Second, time.Millisecond)
			for y := range 10 {
				if y != tt.wantRow {
					require.Empty(t, term.Line(y), "row %d", y)
				}
			}

			cancel()
			require.ErrorIs(t, <-done, context.Canceled)
			requireRestored(t, term, reader)

			x, y := term.Cursor()
			require.Equal(t, 0, x)
			require.Equal(t, tt.wantRow, y, "cursor left where the viewport began")
			require.Empty(t, term.Line(tt.wantRow))
		})
	}
}

func TestNewApp_Validation(t *testing.T) {
	type tc struct {
		reduce Reducer[int, counterMsg, int]
		view   View[int, counterMsg]
		opts   []AppOption
	}

	view := &counterView{}
	tests := map[string]tc{
		"nil reducer":     {view: view},
		"nil view":        {reduce: reduceCounter},
		"frame rate":      {reduce: reduceCounter, view: view, opts: []AppOption{WithFrameRate(0)}},
		"inline height":   {reduce: reduceCounter, view: view, opts: []AppOption{WithViewport(Inline(0))}},
		"nil terminal":    {reduce: reduceCounter, view: view, opts: []AppOption{WithTerminal(nil)}},
		"negative tick":   {reduce: reduceCounter, view: view, opts: []AppOption{WithStoreTick(-time.Second)}},
		"zero input wait": {reduce: reduceCounter, view: view, opts: []AppOption{WithInputLatency(0)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewApp(0, tt.reduce, tt.view, tt.opts...)
			require.Error(t, err)
		})
	}
}
