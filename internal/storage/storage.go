package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
)

// Sentinel errors for storage operations.
var (
	ErrStorage = errors.New("storage error")
	ErrCorrupt = errors.New("corrupt history data")
)

// HistoryKey names the single blob holding the whole entry list in
// key-value backends.
const HistoryKey = "history"

// EntryStore persists the full, ordered list of writing sessions.
// Order is most-recent-first and must survive a round trip.
type EntryStore interface {
	// Load returns the saved list. A store that was never written
	// loads as an empty list.
	Load() ([]entry.Entry, error)

	// Save replaces the saved list with entries.
	Save(entries []entry.Entry) error

	// Close releases any resources held by the store.
	Close() error
}

// record is the persisted layout of one entry. Title and word count are
// recomputed from content on load and never stored.
type record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Content   string    `json:"content"`
	IsLocked  bool      `json:"is_locked"`
}

// Encode serializes entries to the blob layout shared by key-value backends.
func Encode(entries []entry.Entry) ([]byte, error) {
	recs := make([]record, len(entries))
	for i, e := range entries {
		recs[i] = record{
			ID:        e.ID,
			CreatedAt: e.CreatedAt.UTC(),
			UpdatedAt: e.UpdatedAt.UTC(),
			Content:   e.Content,
			IsLocked:  e.Locked,
		}
	}
	data, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding history: %v", ErrStorage, err)
	}
	return data, nil
}

// Decode parses a blob written by Encode. Records without an ID are dropped.
// A record missing updated_at falls back to created_at.
func Decode(data []byte) ([]entry.Entry, error) {
	if len(data) == 0 {
		return []entry.Entry{}, nil
	}
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	entries := make([]entry.Entry, 0, len(recs))
	for _, r := range recs {
		if r.ID == "" {
			continue
		}
		updated := r.UpdatedAt
		if updated.IsZero() {
			updated = r.CreatedAt
		}
		entries = append(entries, entry.Entry{
			ID:        r.ID,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			UpdatedAt: updated,
			Locked:    r.IsLocked,
		})
	}
	return entries, nil
}
