package tui

// StateValue holds a committed value and an optional pending edit. Reads
// see the pending edit when there is one.
type StateValue[T any] struct {
	value   T
	buffer  T
	pending bool
}

// NewStateValue returns a StateValue committed to v.
func NewStateValue[T any](v T) StateValue[T] {
	return StateValue[T]{value: v}
}

// Write stores v as the pending edit.
func (s *StateValue[T]) Write(v T) {
	s.buffer = v
	s.pending = true
}

// Read returns the pending edit, or the committed value if there is none.
func (s StateValue[T]) Read() T {
	if s.pending {
		return s.buffer
	}
	return s.value
}

// Apply commits the pending edit.
func (s *StateValue[T]) Apply() {
	if s.pending {
		s.value = s.buffer
	}
	s.Reset()
}

// Reset discards the pending edit.
func (s *StateValue[T]) Reset() {
	var zero T
	s.buffer = zero
	s.pending = false
}

// Pending reports whether an edit is waiting to be applied.
func (s StateValue[T]) Pending() bool {
	return s.pending
}
