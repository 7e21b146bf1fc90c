package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/ideadice/internal/ui"
)

func TestLockAndUnlock(t *testing.T) {
	e := testEntry(t, "Night shift\nThe vending machine hums", time.Now(), false)
	setupTestEnv(t, e)

	var buf bytes.Buffer
	if err := setLockRun(&buf, e.ID, true); err != nil {
		t.Fatalf("lock: %v", err)
	}
	if !strings.Contains(buf.String(), "Locked entry "+e.ID+" (Night shift)") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if !savedEntries(t)[0].Locked {
		t.Fatal("expected lock to persist")
	}

	buf.Reset()
	if err := setLockRun(&buf, e.ID, false); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !strings.Contains(buf.String(), "Unlocked entry") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if savedEntries(t)[0].Locked {
		t.Error("expected unlock to persist")
	}
}

func TestLockIsIdempotent(t *testing.T) {
	e := testEntry(t, "already sealed", time.Now(), true)
	setupTestEnv(t, e)
	jsonOutput = true

	var buf bytes.Buffer
	if err := setLockRun(&buf, e.ID, true); err != nil {
		t.Fatalf("lock: %v", err)
	}
	var got ui.LockResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if !got.Locked || got.ID != e.ID {
		t.Errorf("unexpected result %+v", got)
	}
	if saved := savedEntries(t); saved[0].Content != "already sealed" {
		t.Errorf("content changed to %q", saved[0].Content)
	}
}

func TestLockNotFound(t *testing.T) {
	setupTestEnv(t)
	if err := setLockRun(&bytes.Buffer{}, "nonexist", true); err == nil {
		t.Error("expected not found error")
	}
}

func TestLockReportsFailedSave(t *testing.T) {
	e := testEntry(t, "cannot persist", time.Now(), false)
	setupTestEnv(t, e)
	makeStoreReadOnly()

	var buf bytes.Buffer
	err := setLockRun(&buf, e.ID, true)
	if err == nil || !strings.Contains(err.Error(), "read-only filesystem") {
		t.Fatalf("expected save error, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no success message expected, got %q", buf.String())
	}
}
