package entry

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rivo/uniseg"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8

	// TitleLength is the maximum number of characters (grapheme clusters)
	// kept from the first line of content.
	TitleLength = 30
)

var idPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

// Entry represents a single writing session.
// Title and word count are always derived from Content.
type Entry struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Locked    bool      `json:"is_locked"`
}

// NewID generates a new nanoid for an entry.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// ValidateID checks whether an ID matches the expected pattern.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid entry ID: %q (must be 8 lowercase alphanumeric characters)", id)
	}
	return nil
}

// ValidateContent checks whether content is non-empty.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("entry content must not be empty")
	}
	return nil
}

// New creates an unlocked entry with a fresh ID, stamped at now.
func New(content string, now time.Time) (Entry, error) {
	id, err := NewID()
	if err != nil {
		return Entry{}, fmt.Errorf("generating ID: %w", err)
	}
	return Entry{
		ID:        id,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetContent replaces the content and bumps UpdatedAt.
func (e *Entry) SetContent(content string, now time.Time) {
	e.Content = content
	e.UpdatedAt = now
}

// Title returns the first line of the content, truncated to TitleLength.
func (e Entry) Title() string {
	return Title(e.Content)
}

// WordCount returns the number of whitespace-separated tokens in the content.
func (e Entry) WordCount() int {
	return WordCount(e.Content)
}

// Title derives an entry title from raw text.
func Title(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)

	var b strings.Builder
	g := uniseg.NewGraphemes(line)
	for n := 0; n < TitleLength && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String()
}

// WordCount counts whitespace-separated tokens in raw text.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// Preview flattens the content to one line and cuts it to at most maxLen
// grapheme clusters, ending in "..." when cut.
func (e *Entry) Preview(maxLen int) string {
	content := strings.ReplaceAll(e.Content, "\n", " ")
	if maxLen <= 0 {
		return ""
	}
	if uniseg.GraphemeClusterCount(content) <= maxLen {
		return content
	}

	keep, suffix := maxLen-3, "..."
	if keep < 1 {
		keep, suffix = maxLen, ""
	}
	var b strings.Builder
	g := uniseg.NewGraphemes(content)
	for n := 0; n < keep && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	return b.String() + suffix
}
