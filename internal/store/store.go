// Package store persists scored documents to a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Score is one recorded analysis of a document.
type Score struct {
	ID           int64
	Timestamp    time.Time
	Source       string
	Words        int
	Sentences    int
	ComplexWords int
	FRES         float64
	ARI          float64
	GFI          float64
	SMOG         int
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS scores (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp     DATETIME NOT NULL DEFAULT (datetime('now')),
	source        TEXT NOT NULL,
	words         INTEGER NOT NULL DEFAULT 0,
	sentences     INTEGER NOT NULL DEFAULT 0,
	complex_words INTEGER NOT NULL DEFAULT 0,
	fres          REAL NOT NULL DEFAULT 0,
	ari           REAL NOT NULL DEFAULT 0,
	gfi           REAL NOT NULL DEFAULT 0,
	smog          INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_scores_timestamp ON scores(timestamp);
`

// Store provides access to the SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database at dbPath.
func New(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert records one score.
func (s *Store) Insert(sc Score) error {
	_, err := s.db.Exec(`
		INSERT INTO scores (source, words, sentences, complex_words, fres, ari, gfi, smog)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sc.Source, sc.Words, sc.Sentences, sc.ComplexWords, sc.FRES, sc.ARI, sc.GFI, sc.SMOG,
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// Recent returns up to limit scores, newest first.
func (s *Store) Recent(limit int) ([]Score, error) {
	rows, err := s.db.Query(`
		SELECT id, timestamp, source, words, sentences, complex_words, fres, ari, gfi, smog
		FROM scores ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		if err := rows.Scan(&sc.ID, &sc.Timestamp, &sc.Source, &sc.Words, &sc.Sentences,
			&sc.ComplexWords, &sc.FRES, &sc.ARI, &sc.GFI, &sc.SMOG); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}
