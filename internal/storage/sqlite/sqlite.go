package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chris-regnier/ideadice/internal/entry"
	"github.com/chris-regnier/ideadice/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.EntryStore using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "ideadice.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id         TEXT PRIMARY KEY,
			position   INTEGER NOT NULL,
			content    TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			locked     INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_entries_position ON entries(position);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns all entries ordered by saved position.
func (s *Store) Load() ([]entry.Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, content, created_at, updated_at, locked FROM entries ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: listing entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	entries := []entry.Entry{}
	for rows.Next() {
		var e entry.Entry
		var createdStr, updatedStr string
		var locked int
		if err := rows.Scan(&e.ID, &e.Content, &createdStr, &updatedStr, &locked); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing created_at: %v", storage.ErrCorrupt, err)
		}
		e.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr)
		if err != nil {
			e.UpdatedAt = e.CreatedAt
		}
		e.Locked = locked != 0
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Save replaces every row in one transaction.
func (s *Store) Save(entries []entry.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("%w: clearing entries: %v", storage.ErrStorage, err)
	}

	for i, e := range entries {
		locked := 0
		if e.Locked {
			locked = 1
		}
		if _, err := tx.Exec(
			"INSERT INTO entries (id, position, content, created_at, updated_at, locked) VALUES (?, ?, ?, ?, ?, ?)",
			e.ID,
			i,
			e.Content,
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
			locked,
		); err != nil {
			return fmt.Errorf("%w: inserting entry %s: %v", storage.ErrStorage, e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}
