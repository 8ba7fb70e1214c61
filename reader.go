package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/cancelreader"
)

// EventReader reads events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	// A timeout of 0 performs a non-blocking check.
	// A negative timeout blocks until an event arrives or the reader is closed.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources and wakes a blocked PollEvent.
	Close() error
}

// errReporter is implemented by readers that can fail permanently.
type errReporter interface {
	Err() error
}

// stdinReader implements EventReader for a real terminal. A goroutine reads
// through a cancelreader so Close can interrupt a blocked read.
type stdinReader struct {
	cr     cancelreader.CancelReader
	events chan Event
	stop   chan struct{}
	done   chan struct{}

	mu   sync.Mutex
	err  error
	once sync.Once
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	cr, err := cancelreader.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("input reader: %w", err)
	}
	r := &stdinReader{
		cr:     cr,
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go r.readLoop()
	return r, nil
}

func (r *stdinReader) readLoop() {
	defer close(r.done)

	buf := make([]byte, 256)
	var partial []byte
	for {
		n, err := r.cr.Read(buf)
		if n > 0 {
			data := append(partial, buf[:n]...)
			events, remaining := parseInputWithRemainder(data)
			partial = append([]byte(nil), remaining...)
			for _, ev := range events {
				select {
				case r.events <- ev:
				case <-r.stop:
					return
				}
			}
		}
		if err != nil {
			r.mu.Lock()
			switch {
			case errors.Is(err, cancelreader.ErrCanceled):
			case errors.Is(err, io.EOF):
				r.err = io.EOF
			default:
				r.err = fmt.Errorf("read terminal input: %w", err)
			}
			r.mu.Unlock()
			return
		}
	}
}

// PollEvent returns the next parsed event, waiting up to timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	return pollChannel(r.events, r.done, timeout)
}

// Err returns the error that stopped the reader: io.EOF at end of input,
// nil after Close.
func (r *stdinReader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close cancels a pending read and waits for the read goroutine to exit
// when the platform supports cancellation.
func (r *stdinReader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.stop)
		// Without cancel support the read stays blocked until input arrives.
		if r.cr.Cancel() {
			<-r.done
		}
		err = r.cr.Close()
	})
	return err
}

// pollChannel receives from events honoring the EventReader timeout rules.
// Buffered events are still returned after done is closed.
func pollChannel(events <-chan Event, done <-chan struct{}, timeout time.Duration) (Event, bool) {
	select {
	case ev := <-events:
		return ev, true
	default:
	}
	if timeout == 0 {
		return nil, false
	}

	var timeoutC <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timeoutC = t.C
	}
	select {
	case ev := <-events:
		return ev, true
	case <-done:
		select {
		case ev := <-events:
			return ev, true
		default:
			return nil, false
		}
	case <-timeoutC:
		return nil, false
	}
}
