// Package diskv stores the whole history as a single JSON blob in a
// diskv key-value directory.
package diskv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/storage"
)

const blobExt = ".json"

// Store implements storage.EntryStore on top of diskv.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// New opens (creating if needed) a diskv store under dataDir/kv.
func New(dataDir string) (*Store, error) {
	basePath := filepath.Join(dataDir, "kv")
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating kv directory: %v", storage.ErrStorage, err)
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(dataDir, "kv-tmp"),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: mcp-serve and the writer may share the directory.
		CacheSizeMax:      0,
	}), basePath: basePath}, nil
}

// Close is a no-op; diskv holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}

// Load reads the history blob. A missing blob is an empty history.
func (s *Store) Load() ([]entry.Entry, error) {
	val, err := s.d.Read(storage.HistoryKey)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []entry.Entry{}, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, storage.HistoryKey, err)
	}
	return storage.Decode(val)
}

// Save overwrites the history blob.
func (s *Store) Save(entries []entry.Entry) error {
	data, err := storage.Encode(entries)
	if err != nil {
		return err
	}
	if err := s.d.Write(storage.HistoryKey, data); err != nil {
		return fmt.Errorf("%w: writing %s: %v", storage.ErrStorage, storage.HistoryKey, err)
	}
	return nil
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + blobExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, blobExt)
}
