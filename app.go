package tui

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrAlreadyRunning is returned when Run is called on an App more than once.
var ErrAlreadyRunning = errors.New("tui: app already running")

// Phase is the lifecycle stage of an App.
type Phase int32

const (
	// PhaseNew is an App that has not been run.
	PhaseNew Phase = iota
	// PhaseStarting acquires the terminal.
	PhaseStarting
	// PhaseRunning draws frames and applies messages.
	PhaseRunning
	// PhaseDraining stops input, closes the channel and waits for tasks.
	PhaseDraining
	// PhaseStopped has restored the terminal and returned.
	PhaseStopped
)

var phaseNames = [...]string{"new", "starting", "running", "draining", "stopped"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// App runs one application: a store applying messages to S, a view drawing
// S, and the terminal in between. An App runs once.
type App[S, M, R any] struct {
	settings settings
	initial  S
	reduce   Reducer[S, M, R]
	view     View[S, M]

	sender Sender[M]
	rx     *Receiver[M]

	phase atomic.Int32

	// Owned by the loop goroutine while running.
	term            Terminal
	reader          EventReader
	theme           Theme
	buffer          *Buffer
	startRow        int // first terminal row of the viewport
	needsFullRedraw bool
	state           S
	inputs          []KeyEvent
	frame           uint64

	acquired    acquired
	restoreOnce sync.Once
	restoreErr  error
}

// acquired records which terminal resources Starting took, so restore
// releases exactly those.
type acquired struct {
	rawMode    bool
	altScreen  bool
	inlineRows bool
	cursor     bool
}

// NewApp creates an App. Nothing touches the terminal until Run.
func NewApp[S, M, R any](initial S, reduce Reducer[S, M, R], view View[S, M], opts ...AppOption) (*App[S, M, R], error) {
	if reduce == nil {
		return nil, errors.New("tui: reducer must not be nil")
	}
	if view == nil {
		return nil, errors.New("tui: view must not be nil")
	}

	s := defaultSettings()
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return nil, err
		}
	}

	sender, rx := NewChannel[M]()
	return &App[S, M, R]{
		settings: s,
		initial:  initial,
		reduce:   reduce,
		view:     view,
		sender:   sender,
		rx:       rx,
	}, nil
}

// Run is a convenience for NewApp followed by App.Run. It returns the value
// carried by the reducer's Exit, or nil when the run ended without one.
func Run[S, M, R any](ctx context.Context, initial S, reduce Reducer[S, M, R], view View[S, M], opts ...AppOption) (*R, error) {
	app, err := NewApp(initial, reduce, view, opts...)
	if err != nil {
		return nil, err
	}
	return app.Run(ctx)
}

// Sender returns a handle for sending messages from outside the view, such
// as timers or background loaders.
func (a *App[S, M, R]) Sender() Sender[M] {
	return a.sender
}

// Phase returns the current lifecycle phase. Safe to call from any goroutine.
func (a *App[S, M, R]) Phase() Phase {
	return Phase(a.phase.Load())
}

func (a *App[S, M, R]) setPhase(p Phase) {
	a.phase.Store(int32(p))
}
