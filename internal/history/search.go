package history

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/chris-regnier/ideadice/internal/entry"
)

// searchSource adapts an entry list to fuzzy.Source. Each entry is matched
// on its title followed by its flattened content.
type searchSource []entry.Entry

func (s searchSource) String(i int) string {
	return s[i].Title() + " " + strings.ReplaceAll(s[i].Content, "\n", " ")
}

func (s searchSource) Len() int { return len(s) }

// Search returns the entries fuzzily matching query, best match first.
// An empty query returns entries unchanged.
func Search(entries []entry.Entry, query string) []entry.Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}
	matches := fuzzy.FindFrom(query, searchSource(entries))
	out := make([]entry.Entry, len(matches))
	for i, m := range matches {
		out[i] = entries[m.Index]
	}
	return out
}
