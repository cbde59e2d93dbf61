// Package storage persists save-slot profiles as JSON documents and keeps a
// SQLite history of finished runs. SQLite goes through the pure-Go
// modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is the run history database.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	Slot       int
	Mode       string
	Difficulty string
	Theme      string
	Outcome    string // Died, TimedOut or Won
	Score      uint32
	Elapsed    float64 // seconds
	CreatedAt  time.Time
}

// SlotStats aggregates the history of one slot.
type SlotStats struct {
	Slot       int
	Runs       int
	HighScore  uint32
	AvgScore   float64
	LongestRun float64
	LastPlayed time.Time
}

// Open creates or opens the history database at dbPath, creating parent
// directories and the schema as needed.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot INTEGER NOT NULL,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			theme TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			elapsed_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_slot ON runs(slot);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun appends a finished run and returns its row ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if err := checkSlot(r.Slot); err != nil {
		return 0, err
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (slot, mode, difficulty, theme, outcome, score, elapsed_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Slot, r.Mode, r.Difficulty, r.Theme, r.Outcome, int64(r.Score), r.Elapsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const runColumns = `id, slot, mode, difficulty, theme, outcome, score, elapsed_secs, created_at`

// RecentRuns returns the latest runs of a slot, newest first.
func (s *Store) RecentRuns(slot, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs WHERE slot = ? ORDER BY id DESC LIMIT ?`,
		slot, limit,
	)
}

// TopRuns returns the best runs across all slots. Ties go to the earlier run.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs ORDER BY score DESC, id ASC LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var score int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Slot, &r.Mode, &r.Difficulty, &r.Theme, &r.Outcome, &score, &r.Elapsed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Score = uint32(score)
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// SlotStats aggregates a slot's history. A slot without runs yields zeroes.
func (s *Store) SlotStats(slot int) (*SlotStats, error) {
	stats := &SlotStats{Slot: slot}
	var high int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(elapsed_secs), 0), MAX(created_at)
		 FROM runs WHERE slot = ?`,
		slot,
	).Scan(&stats.Runs, &high, &stats.AvgScore, &stats.LongestRun, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get slot stats: %w", err)
	}
	stats.HighScore = uint32(high)
	stats.LastPlayed = parseTimestamp(lastPlayed)
	return stats, nil
}

// ClearSlot deletes a slot's history.
func (s *Store) ClearSlot(slot int) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTimestamp accepts what the driver hands back for a DATETIME column.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
