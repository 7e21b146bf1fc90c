package cmd

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/prompt"
)

func TestOpenStoreBackends(t *testing.T) {
	for _, backend := range []string{"diskv", "markdown", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()
			s, err := openStore(backend, dir)
			if err != nil {
				t.Fatalf("openStore(%s): %v", backend, err)
			}
			e := testEntry(t, "round trip "+backend, time.Now(), true)
			if err := s.Save([]entry.Entry{e}); err != nil {
				t.Fatalf("Save: %v", err)
			}
			s.Close()

			reopened, err := openStore(backend, dir)
			if err != nil {
				t.Fatalf("reopen: %v", err)
			}
			defer reopened.Close()
			got, err := reopened.Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got) != 1 || got[0].ID != e.ID || !got[0].Locked {
				t.Errorf("unexpected entries %+v", got)
			}
		})
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	_, err := openStore("floppy", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unknown storage backend") {
		t.Errorf("expected unknown backend error, got %v", err)
	}
}

func TestRollPrintsThreeWords(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := rollRun(&buf, prompt.NewDice(rand.NewPCG(1, 2))); err != nil {
		t.Fatalf("rollRun: %v", err)
	}
	parts := strings.Split(strings.TrimSpace(buf.String()), " · ")
	if len(parts) != 3 {
		t.Fatalf("expected noun · verb · emotion, got %q", buf.String())
	}
	if !slices.Contains(prompt.Nouns(), parts[0]) || !slices.Contains(prompt.Verbs(), parts[1]) ||
		!slices.Contains(prompt.Emotions(), parts[2]) {
		t.Errorf("roll outside word lists: %q", buf.String())
	}
}

func TestRollJSON(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := rollRun(&buf, prompt.NewDice(rand.NewPCG(3, 4))); err != nil {
		t.Fatalf("rollRun: %v", err)
	}
	var got prompt.Words
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if got.Noun == "" || got.Verb == "" || got.Emotion == "" {
		t.Errorf("incomplete roll %+v", got)
	}
}

func TestNewSessionUsesConfig(t *testing.T) {
	setupTestEnv(t)
	appConfig.NoBackspace = true

	s := newSession(openHistory())
	if !s.NoBackspace() {
		t.Error("expected no-backspace from config")
	}
	if s.Words().Noun == "" {
		t.Error("expected an initial roll")
	}
}

func TestRootReleasesLogWhenStoreFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("data_dir = \""+dir+"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cfgFile, storageBackend = "", ""
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"--config", cfgPath, "--storage", "floppy", "roll"})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "unknown storage backend") {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
	if closeLog != nil {
		t.Error("log file left open after store failure")
	}
	if _, err := os.Stat(filepath.Join(dir, "ideadice.log")); err != nil {
		t.Errorf("expected log file in data dir: %v", err)
	}
}
