// Package stats summarizes the writing history: totals, today's output and
// the run of consecutive days with writing.
package stats

import (
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
)

const dayLayout = "2006-01-02"

// Summary is the writing status at a point in time.
type Summary struct {
	Entries    int  `json:"entries"`
	Locked     int  `json:"locked"`
	Words      int  `json:"words"`
	TodayWords int  `json:"today_words"`
	WroteToday bool `json:"wrote_today"`
	Streak     int  `json:"streak"`
}

// Compute summarizes entries as of now. A day counts toward the streak when
// an entry was created or last updated on it, in now's location.
func Compute(entries []entry.Entry, now time.Time) Summary {
	var s Summary
	days := make(map[string]bool, len(entries))
	today := now.Format(dayLayout)

	for _, e := range entries {
		words := e.WordCount()
		s.Entries++
		s.Words += words
		if e.Locked {
			s.Locked++
		}
		created := e.CreatedAt.In(now.Location()).Format(dayLayout)
		updated := e.UpdatedAt.In(now.Location()).Format(dayLayout)
		days[created] = true
		days[updated] = true
		if updated == today {
			s.TodayWords += words
		}
	}

	s.WroteToday = days[today]

	// Count back from today, or from yesterday if nothing is written yet
	// today, so the streak survives until midnight.
	check := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	if !s.WroteToday {
		check = check.AddDate(0, 0, -1)
	}
	for days[check.Format(dayLayout)] {
		s.Streak++
		check = check.AddDate(0, 0, -1)
	}
	return s
}
