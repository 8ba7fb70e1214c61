package tui

import (
	"context"
	"time"

	"github.com/radicle-dev/radicle-tui/internal/debug"
)

// DefaultStoreTick is how often a state implementing Ticker is ticked.
const DefaultStoreTick = time.Second

// Reducer applies msg to state. Returning a non-nil Exit ends the run.
// Reducers are never called concurrently.
type Reducer[S, M, R any] func(state *S, msg M) *Exit[R]

// Ticker is implemented by states that change over time. Tick is called
// by the Store between messages.
type Ticker interface {
	Tick()
}

// Cloner is implemented by states holding references (slices, maps,
// pointers) that a plain copy would share with the renderer.
type Cloner[S any] interface {
	Clone() S
}

// Snapshot returns a copy of s that is safe to read while s is mutated.
// Clone is used with either a value or a pointer receiver.
func Snapshot[S any](s *S) S {
	if c, ok := any(s).(Cloner[S]); ok {
		return c.Clone()
	}
	if c, ok := any(*s).(Cloner[S]); ok {
		return c.Clone()
	}
	return *s
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	tick time.Duration
}

// TickEvery sets the tick interval for Ticker states. Zero disables
// ticking.
func TickEvery(d time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.tick = d
	}
}

// Store owns the application state and applies messages to it.
type Store[S, M, R any] struct {
	state  S
	reduce Reducer[S, M, R]
	rx     *Receiver[M]
	tick   time.Duration
}

// NewStore creates a Store draining rx.
func NewStore[S, M, R any](initial S, reduce Reducer[S, M, R], rx *Receiver[M], opts ...StoreOption) *Store[S, M, R] {
	cfg := storeConfig{tick: DefaultStoreTick}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[S, M, R]{
		state:  initial,
		reduce: reduce,
		rx:     rx,
		tick:   cfg.tick,
	}
}

// State returns a snapshot of the current state. It must not be called
// while Run is active.
func (s *Store[S, M, R]) State() S {
	return Snapshot(&s.state)
}

// Run applies messages until the reducer exits, the receiver is closed or
// ctx is done. After every applied message a snapshot is offered on out,
// replacing any snapshot the reader has not taken yet.
func (s *Store[S, M, R]) Run(ctx context.Context, out chan S) (*Exit[R], error) {
	var tickC <-chan time.Time
	if _, ok := any(&s.state).(Ticker); ok && s.tick > 0 {
		t := time.NewTicker(s.tick)
		defer t.Stop()
		tickC = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case <-s.rx.Done():
			return nil, ErrClosed

		case <-tickC:
			any(&s.state).(Ticker).Tick()
			offerLatest(out, Snapshot(&s.state))

		case <-s.rx.Ready():
			for {
				msg, ok := s.rx.TryRecv()
				if !ok {
					break
				}
				if exit := s.reduce(&s.state, msg); exit != nil {
					debug.Logger().Debug("store exit", "value", exit.Value != nil)
					return exit, nil
				}
				offerLatest(out, Snapshot(&s.state))
			}
		}
	}
}

// offerLatest puts v on a one-slot channel, dropping a stale value first.
// Only one goroutine may offer on ch.
func offerLatest[T any](ch chan T, v T) {
	if ch == nil {
		return
	}
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
