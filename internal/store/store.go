// Package store provides SQLite persistence for completed extractions. It is
// an audit log: extraction itself is stateless and never reads the store.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Store represents a SQLite database connection for recording snapshots.
type Store struct {
	db   *sql.DB
	path string
}

// New creates a new Store with the given database path.
// It opens the database connection, enables foreign keys, and runs migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Snapshots table - one row per completed extraction
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			phase TEXT NOT NULL CHECK(phase IN ('preflop', 'postflop')),
			community TEXT NOT NULL DEFAULT '',
			hero_cards TEXT NOT NULL DEFAULT '',
			pot TEXT NOT NULL DEFAULT '',
			pot_total TEXT NOT NULL DEFAULT '',
			dealer_seat INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Snapshot players table - one row per seat per snapshot
		`CREATE TABLE IF NOT EXISTS snapshot_players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id TEXT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
			seat INTEGER NOT NULL,
			presence TEXT NOT NULL,
			stack TEXT NOT NULL DEFAULT '',
			bet_amount TEXT NOT NULL DEFAULT '',
			all_in INTEGER NOT NULL DEFAULT 0,
			move TEXT NOT NULL DEFAULT '',
			position TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE INDEX IF NOT EXISTS idx_snapshot_players_snapshot_id ON snapshot_players(snapshot_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
