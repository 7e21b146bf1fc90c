package mcptools

import (
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
)

const defaultLimit = 10

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func toResult(e entry.Entry) EntryResult {
	return EntryResult{
		ID:        e.ID,
		Title:     e.Title(),
		Preview:   e.Preview(100),
		WordCount: e.WordCount(),
		Locked:    e.Locked,
		Updated:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func limitOrDefault(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	return n
}
