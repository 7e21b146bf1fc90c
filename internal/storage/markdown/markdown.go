package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/storage"
)

// Store implements storage.EntryStore using one Markdown file with YAML
// front-matter per entry. List order is kept in the position field.
type Store struct {
	baseDir string // e.g. ~/.ideadice/entries/
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	entriesDir := filepath.Join(dataDir, "entries")
	if err := os.MkdirAll(entriesDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating entries directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: entriesDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) entryPath(id string) string {
	return filepath.Join(s.baseDir, id+".md")
}

func (s *Store) marshal(e entry.Entry, position int) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "id: %s\n", e.ID)
	fmt.Fprintf(&b, "created_at: %s\n", e.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "updated_at: %s\n", e.UpdatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "locked: %t\n", e.Locked)
	fmt.Fprintf(&b, "position: %d\n", position)
	b.WriteString("---\n")
	b.WriteString(e.Content)
	return []byte(b.String())
}

type frontMatter struct {
	ID        string `yaml:"id"`
	CreatedAt string `yaml:"created_at"`
	UpdatedAt string `yaml:"updated_at"`
	Locked    bool   `yaml:"locked"`
	Position  int    `yaml:"position"`
}

func (s *Store) unmarshal(data []byte) (entry.Entry, int, error) {
	var fm frontMatter
	content, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return entry.Entry{}, 0, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrCorrupt, err)
	}
	if fm.ID == "" {
		return entry.Entry{}, 0, fmt.Errorf("%w: missing id", storage.ErrCorrupt)
	}

	createdAt, err := time.Parse(time.RFC3339, fm.CreatedAt)
	if err != nil {
		return entry.Entry{}, 0, fmt.Errorf("%w: parsing created_at: %v", storage.ErrCorrupt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, fm.UpdatedAt)
	if err != nil {
		updatedAt = createdAt
	}

	return entry.Entry{
		ID:        fm.ID,
		Content:   string(content),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Locked:    fm.Locked,
	}, fm.Position, nil
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Load reads every entry file, skipping malformed ones, in saved order.
func (s *Store) Load() ([]entry.Entry, error) {
	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entries dir: %v", storage.ErrStorage, err)
	}

	type positioned struct {
		e   entry.Entry
		pos int
	}
	var found []positioned
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, de.Name()))
		if err != nil {
			continue // skip unreadable files
		}
		e, pos, err := s.unmarshal(data)
		if err != nil {
			continue // skip malformed files
		}
		found = append(found, positioned{e: e, pos: pos})
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].pos == found[j].pos {
			return found[i].e.UpdatedAt.After(found[j].e.UpdatedAt)
		}
		return found[i].pos < found[j].pos
	})

	entries := make([]entry.Entry, len(found))
	for i, p := range found {
		entries[i] = p.e
	}
	return entries, nil
}

// Save writes every entry and removes files for entries no longer present.
func (s *Store) Save(entries []entry.Entry) error {
	keep := make(map[string]bool, len(entries))
	for i, e := range entries {
		if err := entry.ValidateID(e.ID); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrStorage, err)
		}
		if err := s.atomicWrite(s.entryPath(e.ID), s.marshal(e, i)); err != nil {
			return err
		}
		keep[e.ID+".md"] = true
	}

	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return fmt.Errorf("%w: reading entries dir: %v", storage.ErrStorage, err)
	}
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") || keep[de.Name()] {
			continue
		}
		if err := os.Remove(filepath.Join(s.baseDir, de.Name())); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: removing stale entry: %v", storage.ErrStorage, err)
		}
	}
	return nil
}
