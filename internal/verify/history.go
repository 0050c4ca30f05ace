package verify

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// History persists verification run summaries so regressions across
// regenerations are visible ("last week 10/10 were complete, today 8/10").
type History struct {
	db *sql.DB
}

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at   TIMESTAMP NOT NULL,
	total        INTEGER NOT NULL,
	complete     INTEGER NOT NULL,
	all_complete INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS project_results (
	run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	name     TEXT NOT NULL,
	complete INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_project_results_run ON project_results(run_id);
`

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(path string) (*History, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging history db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error {
	return h.db.Close()
}

// RecordRun stores one summary and returns the new run ID.
func (h *History) RecordRun(summary *Summary) (int64, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning history tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (started_at, total, complete, all_complete) VALUES (?, ?, ?, ?)`,
		time.Now().UTC(), len(summary.Records), summary.CompleteCount, summary.AllComplete,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	for _, record := range summary.Records {
		if _, err := tx.Exec(
			`INSERT INTO project_results (run_id, name, complete) VALUES (?, ?, ?)`,
			runID, record.Name, record.Complete,
		); err != nil {
			return 0, fmt.Errorf("inserting result for %s: %w", record.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Run is one persisted verification run.
type Run struct {
	ID          int64
	StartedAt   time.Time
	Total       int
	Complete    int
	AllComplete bool
}

// RecentRuns returns up to n runs, newest first.
func (h *History) RecentRuns(n int) ([]Run, error) {
	rows, err := h.db.Query(
		`SELECT id, started_at, total, complete, all_complete FROM runs ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Total, &r.Complete, &r.AllComplete); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
