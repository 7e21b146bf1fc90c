package storage

import (
	"errors"
	"testing"
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
)

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(nil)
	if err != nil {
		t.Fatalf("Decode(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d entries", len(got))
	}
}

func TestDecodeCorrupt(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestDecodeLegacyRecords(t *testing.T) {
	// Records written with only {id, createdAt, content, isLocked}.
	data := []byte(`[
		{"id":"aaaa1111","created_at":"2026-01-02T03:04:05Z","content":"Hello world","is_locked":true},
		{"content":"no id"}
	]`)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if !e.Locked {
		t.Error("expected locked entry")
	}
	if !e.UpdatedAt.Equal(e.CreatedAt) {
		t.Errorf("updated_at should fall back to created_at, got %v", e.UpdatedAt)
	}
	if e.Title() != "Hello world" || e.WordCount() != 2 {
		t.Errorf("derived fields = %q/%d", e.Title(), e.WordCount())
	}
}

func TestEncodeDecodePreservesOrder(t *testing.T) {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	in := []entry.Entry{
		{ID: "zzzz0000", Content: "newest", CreatedAt: now, UpdatedAt: now},
		{ID: "aaaa0000", Content: "oldest", CreatedAt: now.Add(-time.Hour), UpdatedAt: now, Locked: true},
	}
	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(out) != 2 || out[0].ID != "zzzz0000" || out[1].ID != "aaaa0000" {
		t.Fatalf("order not preserved: %+v", out)
	}
	if !out[1].Locked {
		t.Error("lock flag lost")
	}
}
