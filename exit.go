package tui

// Exit ends a run. Value is nil when the run ended without a result, for
// example after an interrupt.
type Exit[R any] struct {
	Value *R
}

// ExitWith returns an Exit carrying v.
func ExitWith[R any](v R) *Exit[R] {
	return &Exit[R]{Value: &v}
}

// ExitNone returns an Exit without a value.
func ExitNone[R any]() *Exit[R] {
	return &Exit[R]{}
}
