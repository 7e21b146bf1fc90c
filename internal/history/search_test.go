package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chris-regnier/ideadice/internal/entry"
)

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	entries := []entry.Entry{seedEntry(t, "one", false), seedEntry(t, "two", false)}
	assert.Equal(t, entries, Search(entries, "  "))
}

func TestSearch_MatchesTitleAndBody(t *testing.T) {
	lighthouse := seedEntry(t, "Lighthouse keeper\nThe lamp went out at midnight", false)
	grocery := seedEntry(t, "Grocery thoughts\napples and bread", false)
	entries := []entry.Entry{grocery, lighthouse}

	byTitle := Search(entries, "keeper")
	if assert.Len(t, byTitle, 1) {
		assert.Equal(t, lighthouse.ID, byTitle[0].ID)
	}

	byBody := Search(entries, "apples")
	if assert.Len(t, byBody, 1) {
		assert.Equal(t, grocery.ID, byBody[0].ID)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	entries := []entry.Entry{seedEntry(t, "quiet harbor", false)}
	assert.Empty(t, Search(entries, "zzzz"))
}
