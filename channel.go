package tui

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when sending on a channel whose receiver is closed.
// It is expected during shutdown and can be ignored by producers.
var ErrClosed = errors.New("tui: channel closed")

// mailbox is the unbounded queue shared by a Sender and its Receiver.
type mailbox[M any] struct {
	mu     sync.Mutex
	queue  []M
	closed bool
	ready  chan struct{} // holds one token while the queue may be non-empty
	done   chan struct{}
}

// NewChannel creates a message channel. The Sender may be copied freely and
// shared between producers; the Receiver must have a single owner.
func NewChannel[M any]() (Sender[M], *Receiver[M]) {
	mb := &mailbox[M]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	return Sender[M]{mb: mb}, &Receiver[M]{mb: mb}
}

// Sender is the producing half of a channel. The zero value is closed.
type Sender[M any] struct {
	mb *mailbox[M]
}

// Send enqueues msg. It never blocks. Messages from one producer are
// received in the order they were sent.
func (s Sender[M]) Send(msg M) error {
	if s.mb == nil {
		return ErrClosed
	}

	s.mb.mu.Lock()
	if s.mb.closed {
		s.mb.mu.Unlock()
		return ErrClosed
	}
	s.mb.queue = append(s.mb.queue, msg)
	s.mb.mu.Unlock()

	select {
	case s.mb.ready <- struct{}{}:
	default:
	}
	return nil
}

// Done is closed once the receiver has been closed.
func (s Sender[M]) Done() <-chan struct{} {
	if s.mb == nil {
		return closedCh
	}
	return s.mb.done
}

var closedCh = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Receiver is the consuming half of a channel.
type Receiver[M any] struct {
	mb *mailbox[M]
}

// TryRecv dequeues the oldest message without blocking.
func (r *Receiver[M]) TryRecv() (M, bool) {
	var zero M

	r.mb.mu.Lock()
	defer r.mb.mu.Unlock()

	if r.mb.closed || len(r.mb.queue) == 0 {
		return zero, false
	}
	msg := r.mb.queue[0]
	r.mb.queue[0] = zero
	r.mb.queue = r.mb.queue[1:]
	if len(r.mb.queue) == 0 {
		r.mb.queue = nil
	}
	return msg, true
}

// Recv blocks until a message is available, the receiver is closed or ctx
// is done.
func (r *Receiver[M]) Recv(ctx context.Context) (M, error) {
	var zero M
	for {
		if msg, ok := r.TryRecv(); ok {
			return msg, nil
		}
		select {
		case <-r.mb.ready:
		case <-r.mb.done:
			return zero, ErrClosed
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Ready fires when messages may be waiting. Drain with TryRecv after it fires.
func (r *Receiver[M]) Ready() <-chan struct{} {
	return r.mb.ready
}

// Done is closed once Close has been called.
func (r *Receiver[M]) Done() <-chan struct{} {
	return r.mb.done
}

// Len returns the number of queued messages.
func (r *Receiver[M]) Len() int {
	r.mb.mu.Lock()
	defer r.mb.mu.Unlock()
	return len(r.mb.queue)
}

// Close drops queued messages and makes every later Send fail with
// ErrClosed. It returns the number of messages dropped. Close is idempotent.
func (r *Receiver[M]) Close() int {
	r.mb.mu.Lock()
	defer r.mb.mu.Unlock()

	if r.mb.closed {
		return 0
	}
	dropped := len(r.mb.queue)
	r.mb.closed = true
	r.mb.queue = nil
	close(r.mb.done)
	return dropped
}
