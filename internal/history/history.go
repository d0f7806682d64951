// Package history keeps per-session review metrics in SQLite so trend
// queries don't have to load every JSON result document.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Row is one session's metrics as stored in the history database.
type Row struct {
	SessionID     string
	Date          string // YYYY-MM-DD
	Coherence     float64
	FocusScore    int
	Hyperfocus    int
	TopicSwitches int
	Fragments     int
	Items         int
}

// Store is the review-history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and runs
// migrations. Uses WAL mode so watch-mode writes don't block trend reads.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("history: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("history: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migration: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS reviews (
			session_id     TEXT PRIMARY KEY,
			date           TEXT NOT NULL,
			coherence      REAL NOT NULL,
			focus_score    INTEGER NOT NULL DEFAULT 0,
			hyperfocus     INTEGER NOT NULL DEFAULT 0,
			topic_switches INTEGER NOT NULL DEFAULT 0,
			fragments      INTEGER NOT NULL DEFAULT 0,
			items          INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_reviews_date ON reviews(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts or replaces the metrics row for a session.
func (s *Store) Record(r Row) error {
	_, err := s.db.Exec(`
		INSERT INTO reviews (session_id, date, coherence, focus_score, hyperfocus, topic_switches, fragments, items)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			date = excluded.date,
			coherence = excluded.coherence,
			focus_score = excluded.focus_score,
			hyperfocus = excluded.hyperfocus,
			topic_switches = excluded.topic_switches,
			fragments = excluded.fragments,
			items = excluded.items`,
		r.SessionID, r.Date, r.Coherence, r.FocusScore, r.Hyperfocus, r.TopicSwitches, r.Fragments, r.Items)
	if err != nil {
		return fmt.Errorf("history: record %s: %w", r.SessionID, err)
	}
	return nil
}

// All returns every row ordered by date ascending.
func (s *Store) All() ([]Row, error) {
	rows, err := s.db.Query(`
		SELECT session_id, date, coherence, focus_score, hyperfocus, topic_switches, fragments, items
		FROM reviews ORDER BY date ASC, session_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.SessionID, &r.Date, &r.Coherence, &r.FocusScore,
			&r.Hyperfocus, &r.TopicSwitches, &r.Fragments, &r.Items); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of recorded sessions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM reviews`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history: count: %w", err)
	}
	return n, nil
}
