// Package clock provides the wall-clock source used by the writing timer,
// the history manager and the input feedback signal.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// Now returns time.Now().
func (Real) Now() time.Time { return time.Now() }

// Fake is a manually driven clock for tests. It is not safe for concurrent use.
type Fake struct {
	now time.Time
}

// NewFake returns a Fake starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

// Now returns the fake's current time.
func (f *Fake) Now() time.Time { return f.now }

// Advance moves the fake forward by d.
func (f *Fake) Advance(d time.Duration) { f.now = f.now.Add(d) }

// Set jumps the fake to t.
func (f *Fake) Set(t time.Time) { f.now = t }
