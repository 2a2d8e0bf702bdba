// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest records per-file conversion outcomes for a run in a
// SQLite database kept next to the generated PDFs.
package manifest

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store manages the run manifest database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the manifest database at path and creates the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			total INTEGER,
			converted INTEGER,
			failed INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			rel_path TEXT NOT NULL,
			output_path TEXT,
			status TEXT NOT NULL,
			size_bytes INTEGER,
			processed_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// BeginRun inserts a run row for the given input and output folders and
// returns its id.
func (s *Store) BeginRun(input, output string) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (input, output, started_at) VALUES (?, ?, ?)`,
		input, output, now(),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run start: %w", err)
	}
	return res.LastInsertId()
}

// RecordFile inserts one processed-file row for the run.
func (s *Store) RecordFile(runID int64, relPath, outputPath, status string, size int64) error {
	_, err := s.db.Exec(
		`INSERT INTO files (run_id, rel_path, output_path, status, size_bytes, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, relPath, outputPath, status, size, now(),
	)
	if err != nil {
		return fmt.Errorf("recording file %s: %w", relPath, err)
	}
	return nil
}

// FinishRun stamps the run row with its completion time and counts.
func (s *Store) FinishRun(runID int64, total, converted, failed int) error {
	_, err := s.db.Exec(
		`UPDATE runs SET finished_at = ?, total = ?, converted = ?, failed = ? WHERE id = ?`,
		now(), total, converted, failed, runID,
	)
	if err != nil {
		return fmt.Errorf("recording run finish: %w", err)
	}
	return nil
}

// FileCount returns the number of recorded files for a run.
func (s *Store) FileCount(runID int64) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM files WHERE run_id = ?`, runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting manifest files: %w", err)
	}
	return n, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
