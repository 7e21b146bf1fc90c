package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/chris-regnier/ideadice/internal/config"
	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/logging"
	"github.com/chris-regnier/ideadice/internal/storage"
	"github.com/chris-regnier/ideadice/internal/storage/diskv"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func setupTestStore(t *testing.T) storage.EntryStore {
	t.Helper()
	s, err := diskv.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T, seed ...entry.Entry) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{MaxWidth: 100}
	jsonOutput = false
	logger = logging.Discard()
	if len(seed) > 0 {
		if err := store.Save(seed); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
}

func testEntry(t *testing.T, content string, updated time.Time, locked bool) entry.Entry {
	t.Helper()
	e, err := entry.New(content, updated.UTC().Truncate(time.Second))
	if err != nil {
		t.Fatalf("entry.New: %v", err)
	}
	e.Locked = locked
	return e
}

// fakeEditor writes a shell script that replaces the edited file with text.
func fakeEditor(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	script := "#!/bin/sh\nprintf '%s' '" + text + "' > \"$1\"\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func savedEntries(t *testing.T) []entry.Entry {
	t.Helper()
	entries, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return entries
}

// readOnlyStore loads normally and refuses every save.
type readOnlyStore struct {
	storage.EntryStore
}

func (readOnlyStore) Save([]entry.Entry) error { return errors.New("read-only filesystem") }

func makeStoreReadOnly() {
	store = readOnlyStore{store}
}
