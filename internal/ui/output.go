package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/prompt"
	"github.com/chris-regnier/ideadice/internal/stats"
	"github.com/gosuri/uitable"
)

const timeLayout = "2006-01-02 15:04"

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id string) {
	fmt.Fprintf(w, "Deleted entry %s.\n", id)
}

// FormatLockChanged reports a lock or unlock.
func FormatLockChanged(w io.Writer, e entry.Entry) {
	state := "Unlocked"
	if e.Locked {
		state = "Locked"
	}
	fmt.Fprintf(w, "%s entry %s (%s).\n", state, e.ID, e.Title())
}

// FormatEntryUpdated formats an update confirmation message.
func FormatEntryUpdated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Updated entry %s (%s)\n", e.ID, e.UpdatedAt.Local().Format(timeLayout))
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, id string) {
	fmt.Fprintf(w, "No changes detected for entry %s.\n", id)
}

// FormatWords prints a dice roll.
func FormatWords(w io.Writer, words prompt.Words) {
	fmt.Fprintln(w, words.String())
}

// FormatStats prints writing totals as a two-column table.
func FormatStats(w io.Writer, s stats.Summary) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Entries:", fmt.Sprintf("%d (%d locked)", s.Entries, s.Locked))
	tbl.AddRow("Words:", strconv.Itoa(s.Words))
	tbl.AddRow("Today:", fmt.Sprintf("%d words", s.TodayWords))
	streak := fmt.Sprintf("%d days", s.Streak)
	if s.Streak == 1 {
		streak = "1 day"
	}
	tbl.AddRow("Streak:", streak)
	fmt.Fprintln(w, tbl)
}

// FormatEntryFull formats a full entry display with metadata header.
// The markdownStyle parameter controls glamour rendering (e.g. "dark", "light").
func FormatEntryFull(w io.Writer, e entry.Entry, markdownStyle string) {
	fmt.Fprintf(w, "Entry: %s\n", e.ID)
	fmt.Fprintf(w, "Title: %s\n", e.Title())
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Modified: %s\n", e.UpdatedAt.Local().Format(timeLayout))
	fmt.Fprintf(w, "Words: %d\n", e.WordCount())
	if e.Locked {
		fmt.Fprintln(w, "Locked: yes")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderMarkdownWithStyle(e.Content, 80, markdownStyle))
}

// FormatEntryList formats a list of entries as a table, most recent first.
func FormatEntryList(w io.Writer, entries []entry.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No writing yet.")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = entry.TitleLength + 2
	tbl.AddRow("ID", "UPDATED", "WORDS", "LOCK", "TITLE")
	for _, e := range entries {
		lock := ""
		if e.Locked {
			lock = "🔒"
		}
		tbl.AddRow(e.ID, e.UpdatedAt.Local().Format(timeLayout), strconv.Itoa(e.WordCount()), lock, e.Title())
	}
	fmt.Fprintln(w, tbl)
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	WordCount int       `json:"word_count"`
	Locked    bool      `json:"is_locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSummary converts one entry for JSON output.
func ToSummary(e entry.Entry) EntrySummary {
	return EntrySummary{
		ID:        e.ID,
		Title:     e.Title(),
		WordCount: e.WordCount(),
		Locked:    e.Locked,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = ToSummary(e)
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// LockResult is a JSON representation for lock and unlock output.
type LockResult struct {
	ID     string `json:"id"`
	Locked bool   `json:"is_locked"`
}
