// Package catalog persists form definitions in SQLite so registered forms
// survive server restarts. Sessions are deliberately not persisted — the
// catalog covers definitions only, and the composition root replays it
// into the in-memory registry at startup.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// Record is a stored form definition row. Schema is the raw JSON document
// as registered; the engine re-parses it on load.
type Record struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Schema    string `json:"schema"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Config holds catalog configuration.
type Config struct {
	DataDir string
}

// DefaultConfig stores the catalog under ~/.formflow.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{DataDir: filepath.Join(home, ".formflow")}
}

// Store is the definition catalog backed by SQLite.
type Store struct {
	db  *sql.DB
	cfg Config
}

// New creates the data directory if needed, opens SQLite with WAL mode,
// and runs migrations.
func New(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("catalog: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "catalog.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("catalog: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("catalog: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS form_definitions (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			schema     TEXT NOT NULL,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating form_definitions: %w", err)
	}
	return nil
}

// Save upserts a definition by id — last write wins, matching registry
// semantics.
func (s *Store) Save(id, name, schema string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO form_definitions (id, name, schema, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name       = excluded.name,
			schema     = excluded.schema,
			updated_at = excluded.updated_at`,
		id, name, schema, now, now,
	)
	if err != nil {
		return fmt.Errorf("catalog: save %q: %w", id, err)
	}
	return nil
}

// LoadAll returns every stored definition, ordered by id.
func (s *Store) LoadAll() ([]Record, error) {
	rows, err := s.db.Query(`
		SELECT id, name, schema, created_at, updated_at
		FROM form_definitions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: load: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Schema, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("catalog: scan: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete removes a stored definition. Deleting an unknown id is a no-op.
func (s *Store) Delete(id string) error {
	if _, err := s.db.Exec(`DELETE FROM form_definitions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("catalog: delete %q: %w", id, err)
	}
	return nil
}

// Count returns the number of stored definitions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM form_definitions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("catalog: count: %w", err)
	}
	return n, nil
}
