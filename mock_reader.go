package tui

import (
	"sync"
	"time"
)

// MockEventReader is an EventReader for testing. Events added with
// AddEvents wake a PollEvent that is waiting on its timeout.
type MockEventReader struct {
	mu     sync.Mutex
	events []Event
	index  int
	notify chan struct{}
	closed bool
}

// Ensure MockEventReader implements EventReader.
var _ EventReader = (*MockEventReader)(nil)

// NewMockEventReader creates a MockEventReader with the given events.
// Events are returned in order by successive calls to PollEvent.
func NewMockEventReader(events ...Event) *MockEventReader {
	return &MockEventReader{
		events: events,
		notify: make(chan struct{}, 1),
	}
}

// PollEvent returns the next queued event. When the queue is empty it waits
// up to timeout for AddEvents.
func (m *MockEventReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := m.next(); ok {
		return ev, true
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
	case <-m.notify:
		return m.next()
	case <-timeoutC:
		return nil, false
	}
}

func (m *MockEventReader) next() (Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index >= len(m.events) {
		return nil, false
	}
	ev := m.events[m.index]
	m.index++
	return ev, true
}

// Close marks the reader closed and wakes a waiting PollEvent.
func (m *MockEventReader) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.wake()
	return nil
}

// Closed reports whether Close was called.
func (m *MockEventReader) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// AddEvents adds more events to the queue.
func (m *MockEventReader) AddEvents(events ...Event) {
	m.mu.Lock()
	m.events = append(m.events, events...)
	m.mu.Unlock()
	m.wake()
}

// Remaining returns the number of events yet to be returned.
func (m *MockEventReader) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events) - m.index
}

func (m *MockEventReader) wake() {
	select {
	case m.notify <- struct{}{}:
	default:
	}
}
