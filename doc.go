// Package tui is a framework for concurrent terminal user interfaces.
//
// Application state is owned by a Store and mutated only by a reducer that
// applies messages one at a time. Every frame the root View is drawn from a
// snapshot of that state; views emit new messages through the Context, which
// reach the reducer on a later cycle. The im and rm packages provide the
// immediate-mode and retained-mode view strategies.
package tui
