package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// Run acquires the terminal, draws frames until the reducer returns an
// Exit, an interrupt arrives, ctx is done or a terminal operation fails,
// and restores the terminal exactly once on every one of those paths.
//
// The returned value is the one carried by the reducer's Exit. It is nil for
// interrupts. When ctx ends the run, ctx.Err() is returned.
func (a *App[S, M, R]) Run(ctx context.Context) (_ *R, err error) {
	if !a.phase.CompareAndSwap(int32(PhaseNew), int32(PhaseStarting)) {
		return nil, ErrAlreadyRunning
	}
	defer a.setPhase(PhaseStopped)

	if err := a.start(); err != nil {
		a.rx.Close()
		return nil, err
	}
	defer func() {
		if rerr := a.restore(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", rerr))
		}
	}()

	a.setPhase(PhaseRunning)
	exit, err := a.loop(ctx)
	if err != nil || exit == nil {
		return nil, err
	}
	return exit.Value, nil
}

// loop runs the frontend until shutdown. The store, the input reader and
// the signal watcher run as tasks of one errgroup; the loop itself owns the
// terminal, the buffer and the frame's input queue.
func (a *App[S, M, R]) loop(ctx context.Context) (*Exit[R], error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	a.state = Snapshot(&a.initial)
	snapshots := make(chan S, 1)
	exits := make(chan *Exit[R], 1)
	events := make(chan Event, 64)

	store := NewStore(a.initial, a.reduce, a.rx, TickEvery(a.settings.storeTick))
	g.Go(func() error {
		exit, err := store.Run(gctx, snapshots)
		switch {
		case err == nil:
			exits <- exit
			return nil
		case gctx.Err() != nil, errors.Is(err, ErrClosed):
			return nil
		default:
			return err
		}
	})
	g.Go(func() error {
		return a.readInput(gctx, events)
	})
	g.Go(func() error {
		return watchSignals(gctx, a.term.Size, func(ev Event) {
			select {
			case events <- ev:
			case <-gctx.Done():
			}
		})
	})

	frames := time.NewTicker(a.settings.frameDuration)
	defer frames.Stop()
	refresh := time.NewTicker(a.settings.refreshRate)
	defer refresh.Stop()

	dirty := true
	for {
		select {
		case <-gctx.Done():
			err := a.drain(cancel, g)
			if err == nil {
				err = ctx.Err()
			}
			return nil, err

		case exit := <-exits:
			return exit, a.drain(cancel, g)

		case s := <-snapshots:
			a.state = s
			dirty = true

		case ev := <-events:
			if exit := a.handleEvent(ev); exit != nil {
				return exit, a.drain(cancel, g)
			}
			dirty = true

		case <-refresh.C:
			dirty = true

		case <-frames.C:
			if !dirty {
				continue
			}
			if err := a.renderFrame(); err != nil {
				return nil, errors.Join(err, a.drain(cancel, g))
			}
			dirty = false
		}
	}
}

// handleEvent routes one event from the input or signal task. Keys are
// queued for the next frame; the returned Exit is non-nil for interrupts.
func (a *App[S, M, R]) handleEvent(ev Event) *Exit[R] {
	switch e := ev.(type) {
	case KeyEvent:
		if a.settings.ctrlC && e.Key == KeyCtrlC {
			debug.Logger().Info("interrupted", "by", e)
			return ExitNone[R]()
		}
		a.inputs = append(a.inputs, e)
	case ResizeEvent:
		a.resize(e.Width, e.Height)
	case InterruptEvent:
		debug.Logger().Info("interrupted", "by", e.Signal)
		return ExitNone[R]()
	}
	return nil
}

// drain stops the tasks and waits for them. Closing the receiver first
// makes late sends fail with ErrClosed instead of piling up.
func (a *App[S, M, R]) drain(cancel context.CancelFunc, g *errgroup.Group) error {
	a.setPhase(PhaseDraining)
	if n := a.rx.Close(); n > 0 {
		debug.Logger().Debug("dropped queued messages", "count", n)
	}
	cancel()
	return g.Wait()
}

// readInput forwards events from the reader until ctx is done. A read error
// other than end of input ends the run.
func (a *App[S, M, R]) readInput(ctx context.Context, out chan<- Event) error {
	for {
		ev, ok := a.reader.PollEvent(a.settings.inputLatency)
		if ctx.Err() != nil {
			return nil
		}
		if !ok {
			r, isReporter := a.reader.(errReporter)
			if !isReporter || r.Err() == nil {
				continue
			}
			if errors.Is(r.Err(), io.EOF) {
				debug.Logger().Debug("input closed")
				<-ctx.Done()
				return nil
			}
			return r.Err()
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}
