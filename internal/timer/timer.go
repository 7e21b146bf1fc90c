// Package timer tracks how long the writer has actively been writing in the
// current session. Time spent paused (while the entry is locked) is excluded.
package timer

import (
	"fmt"
	"time"

	"github.com/chris-regnier/ideadice/internal/clock"
)

// State is the stopwatch state.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Timer is a pausable stopwatch. It is driven from a single event loop and
// is not safe for concurrent use.
type Timer struct {
	clock       clock.Clock
	running     bool
	startedAt   time.Time
	accumulated time.Duration
}

// New returns an idle timer reading from c.
func New(c clock.Clock) *Timer {
	if c == nil {
		c = clock.Real{}
	}
	return &Timer{clock: c}
}

// Start begins counting from zero. It is a no-op while running.
func (t *Timer) Start() {
	if t.running {
		return
	}
	t.accumulated = 0
	t.startedAt = t.clock.Now()
	t.running = true
}

// Pause folds the running interval into the accumulated total.
func (t *Timer) Pause() {
	if !t.running {
		return
	}
	t.accumulated += t.clock.Now().Sub(t.startedAt)
	t.startedAt = time.Time{}
	t.running = false
}

// Resume continues counting from the accumulated total. With nothing
// accumulated it behaves like Start.
func (t *Timer) Resume() {
	if t.running {
		return
	}
	if t.accumulated == 0 {
		t.Start()
		return
	}
	t.startedAt = t.clock.Now()
	t.running = true
}

// Reset returns the timer to Idle with zero elapsed.
func (t *Timer) Reset() {
	t.running = false
	t.startedAt = time.Time{}
	t.accumulated = 0
}

// Elapsed reports the active writing time without side effects.
func (t *Timer) Elapsed() time.Duration {
	if !t.running {
		return t.accumulated
	}
	return t.accumulated + t.clock.Now().Sub(t.startedAt)
}

// Running reports whether the timer is counting.
func (t *Timer) Running() bool { return t.running }

// State reports Idle, Running or Paused.
func (t *Timer) State() State {
	switch {
	case t.running:
		return Running
	case t.accumulated > 0:
		return Paused
	default:
		return Idle
	}
}

// Format renders d as MM:SS. Minutes are not wrapped into hours.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
