package input

import (
	"time"

	"github.com/chris-regnier/ideadice/internal/clock"
)

// FeedbackConfig tunes the attempt-feedback pulse.
type FeedbackConfig struct {
	Pulse        time.Duration // how long a pulse stays on
	Gap          time.Duration // off time before the second pulse of a double
	RepeatWindow time.Duration // attempts closer than this produce a double pulse
}

// DefaultFeedbackConfig matches the editor's stock timings.
func DefaultFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{
		Pulse:        300 * time.Millisecond,
		Gap:          100 * time.Millisecond,
		RepeatWindow: 600 * time.Millisecond,
	}
}

// Step switches the signal on or off After the attempt.
type Step struct {
	After time.Duration
	On    bool
}

// Schedule is the follow-up work for one attempt. The caller delivers each
// step back through Feedback.Apply once its delay has passed.
type Schedule struct {
	Gen   int
	Steps []Step
}

// Double reports whether this is a double pulse.
func (s Schedule) Double() bool { return len(s.Steps) > 1 }

// Feedback is the transient signal shown when no-backspace mode swallows a
// delete. It holds no timers of its own so it can live on the UI event loop.
type Feedback struct {
	cfg     FeedbackConfig
	clock   clock.Clock
	active  bool
	gen     int
	last    time.Time
	hasLast bool
}

// NewFeedback returns an inactive signal. Zero durations in cfg take their
// defaults.
func NewFeedback(cfg FeedbackConfig, c clock.Clock) *Feedback {
	def := DefaultFeedbackConfig()
	if cfg.Pulse <= 0 {
		cfg.Pulse = def.Pulse
	}
	if cfg.Gap <= 0 {
		cfg.Gap = def.Gap
	}
	if cfg.RepeatWindow <= 0 {
		cfg.RepeatWindow = def.RepeatWindow
	}
	if c == nil {
		c = clock.Real{}
	}
	return &Feedback{cfg: cfg, clock: c}
}

// Attempt turns the signal on and returns the steps that will clear it.
// Steps from earlier attempts are superseded.
func (f *Feedback) Attempt() Schedule {
	now := f.clock.Now()
	rapid := f.hasLast && now.Sub(f.last) < f.cfg.RepeatWindow
	f.last = now
	f.hasLast = true

	f.gen++
	f.active = true

	steps := []Step{{After: f.cfg.Pulse, On: false}}
	if rapid {
		second := f.cfg.Pulse + f.cfg.Gap
		steps = append(steps,
			Step{After: second, On: true},
			Step{After: second + f.cfg.Pulse/2, On: false},
		)
	}
	return Schedule{Gen: f.gen, Steps: steps}
}

// Apply delivers a scheduled step. Steps from a superseded attempt are ignored.
func (f *Feedback) Apply(gen int, on bool) bool {
	if gen != f.gen {
		return false
	}
	f.active = on
	return true
}

// Active reports whether the signal is currently on.
func (f *Feedback) Active() bool { return f.active }
