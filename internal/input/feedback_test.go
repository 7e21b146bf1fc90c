package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris-regnier/ideadice/internal/clock"
)

func newTestFeedback(t *testing.T) (*Feedback, *clock.Fake) {
	t.Helper()
	c := clock.NewFake(time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC))
	return NewFeedback(FeedbackConfig{}, c), c
}

func TestFeedback_SinglePulseClears(t *testing.T) {
	f, _ := newTestFeedback(t)

	sched := f.Attempt()
	require.True(t, f.Active())
	require.Len(t, sched.Steps, 1)
	assert.False(t, sched.Double())
	assert.Equal(t, Step{After: 300 * time.Millisecond, On: false}, sched.Steps[0])

	assert.True(t, f.Apply(sched.Gen, sched.Steps[0].On))
	assert.False(t, f.Active())
}

func TestFeedback_RapidRepeatIsDoublePulse(t *testing.T) {
	f, c := newTestFeedback(t)

	f.Attempt()
	c.Advance(200 * time.Millisecond)
	sched := f.Attempt()

	require.True(t, sched.Double())
	require.Len(t, sched.Steps, 3)
	assert.Equal(t, []Step{
		{After: 300 * time.Millisecond, On: false},
		{After: 400 * time.Millisecond, On: true},
		{After: 550 * time.Millisecond, On: false},
	}, sched.Steps)

	for i, want := range []bool{false, true, false} {
		f.Apply(sched.Gen, sched.Steps[i].On)
		assert.Equal(t, want, f.Active(), "after step %d", i)
	}
}

func TestFeedback_SlowRepeatIsSinglePulse(t *testing.T) {
	f, c := newTestFeedback(t)

	f.Attempt()
	c.Advance(time.Second)
	sched := f.Attempt()

	assert.False(t, sched.Double())
}

func TestFeedback_StaleStepsIgnored(t *testing.T) {
	f, c := newTestFeedback(t)

	first := f.Attempt()
	c.Advance(time.Second)
	second := f.Attempt()

	assert.False(t, f.Apply(first.Gen, false))
	assert.True(t, f.Active(), "stale clear must not switch off a newer pulse")

	assert.True(t, f.Apply(second.Gen, false))
	assert.False(t, f.Active())
}
