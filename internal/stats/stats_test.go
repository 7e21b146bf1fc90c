package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chris-regnier/ideadice/internal/entry"
)

var now = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func written(content string, daysAgo int, locked bool) entry.Entry {
	at := now.AddDate(0, 0, -daysAgo)
	return entry.Entry{ID: "abcd1234", Content: content, CreatedAt: at, UpdatedAt: at, Locked: locked}
}

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Compute(nil, now))
}

func TestComputeTotals(t *testing.T) {
	s := Compute([]entry.Entry{
		written("one two three", 0, false),
		written("four five", 0, true),
		written("six", 3, false),
	}, now)

	assert.Equal(t, 3, s.Entries)
	assert.Equal(t, 1, s.Locked)
	assert.Equal(t, 6, s.Words)
	assert.Equal(t, 5, s.TodayWords)
	assert.True(t, s.WroteToday)
}

func TestComputeStreakCountsConsecutiveDays(t *testing.T) {
	s := Compute([]entry.Entry{
		written("today", 0, false),
		written("yesterday", 1, false),
		written("day before", 2, false),
		written("after a gap", 4, false),
	}, now)
	assert.Equal(t, 3, s.Streak)
}

func TestComputeStreakSurvivesUntilMidnight(t *testing.T) {
	s := Compute([]entry.Entry{
		written("yesterday", 1, false),
		written("day before", 2, false),
	}, now)
	assert.False(t, s.WroteToday)
	assert.Equal(t, 2, s.Streak)
}

func TestComputeStreakBroken(t *testing.T) {
	s := Compute([]entry.Entry{written("long ago", 2, false)}, now)
	assert.Equal(t, 0, s.Streak)
}

func TestComputeUpdatedDayCounts(t *testing.T) {
	e := written("revisited", 5, false)
	e.UpdatedAt = now
	s := Compute([]entry.Entry{e}, now)
	assert.True(t, s.WroteToday)
	assert.Equal(t, 1, s.Streak)
	assert.Equal(t, 1, s.TodayWords)
}
