// Package runlog records per-run crawl accounting in SQLite, so the
// attempted/succeeded/failed breakdown of every run outlives the process.
package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store persists crawl-run accounting using SQLite.
type Store struct {
	db *sql.DB
}

// Run is the accounting record for one crawl run.
type Run struct {
	RunID      uuid.UUID `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Discovered int       `json:"discovered"`
	Attempted  int       `json:"attempted"`
	Succeeded  int       `json:"succeeded"`
	Failed     int       `json:"failed"`
}

// NewStore creates a run store with the given database path.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the runs table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		discovered INTEGER NOT NULL,
		attempted INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run's accounting.
func (s *Store) Record(run Run) error {
	query := `
		INSERT INTO runs (
			run_id, started_at, finished_at,
			discovered, attempted, succeeded, failed
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		run.RunID.String(),
		formatTime(run.StartedAt),
		formatTime(run.FinishedAt),
		run.Discovered,
		run.Attempted,
		run.Succeeded,
		run.Failed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// ListRuns returns runs, newest first, up to limit (no limit when <= 0).
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, started_at, finished_at,
		       discovered, attempted, succeeded, failed
		FROM runs
		ORDER BY started_at DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var runIDStr, startedAtStr, finishedAtStr string
		var run Run

		err := rows.Scan(
			&runIDStr, &startedAtStr, &finishedAtStr,
			&run.Discovered, &run.Attempted, &run.Succeeded, &run.Failed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		runID, err := uuid.Parse(runIDStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run ID: %w", err)
		}

		run.RunID = runID
		run.StartedAt = parseTime(startedAtStr)
		run.FinishedAt = parseTime(finishedAtStr)
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Helper functions for time formatting
func formatTime(t time.Time) string {
	// Strip monotonic clock for consistent storage and comparisons
	return t.Truncate(0).Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	// Try RFC3339Nano first, fall back to RFC3339 for compatibility
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339, s)
	}
	return t.Truncate(0)
}
