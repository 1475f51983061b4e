// Copyright © 2025 Gridterm contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: input/store.go
// Summary: SQLite-backed persistence for submitted input lines.
// Usage: Open once per session; Append on submit, Recent to seed the
// in-memory history on startup.
// Notes: Schema is versioned; an incompatible version is rebuilt.

package input

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const storeSchemaVersion = 1

// Store persists submitted input lines to a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenStore opens (or creates) the history database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// The store is low-traffic; a single connection avoids locking
	// surprises with the pure-Go driver.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != 0 && version != storeSchemaVersion {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS history"); err != nil {
			return fmt.Errorf("rebuild schema: %w", err)
		}
	}

	_, err = s.db.Exec(`
		CREATE TABLE IF NOT EXISTS history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			submitted INTEGER NOT NULL,
			line      TEXT    NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_submitted ON history(submitted);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", storeSchemaVersion))
	if err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return nil
}

// Append records a submitted line. Empty lines are skipped, matching
// the in-memory history's behavior.
func (s *Store) Append(line string) error {
	if line == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		"INSERT INTO history (submitted, line) VALUES (?, ?)",
		time.Now().UnixMilli(), line,
	)
	if err != nil {
		return fmt.Errorf("append history line: %w", err)
	}
	return nil
}

// Recent returns up to limit of the most recently submitted lines,
// oldest first, ready to feed History.Seed.
func (s *Store) Recent(limit int) ([]string, error) {
	if limit < 1 {
		limit = 100
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		"SELECT line FROM (SELECT id, line FROM history ORDER BY id DESC LIMIT ?) ORDER BY id ASC",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent history: %w", err)
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan history line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return lines, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
