// Package storage provides SQLite-based persistence for generation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/jumpforge/internal/batch"
)

var _ batch.Recorder = (*Store)(nil)

// Store manages the SQLite database connection for the run ledger.
type Store struct {
	db *sql.DB
}

// Run is one generation run.
type Run struct {
	ID         int64
	Seed       int64
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is in progress or if it aborted
	Accepted   int
	Rejected   int
}

// ResultEntry is one recorded variant verdict.
type ResultEntry struct {
	ID            int64
	RunID         int64
	RecipeID      string
	Slug          string
	Difficulty    string
	Valid         bool
	FailureIndex  int
	Code          string
	Reason        string
	TouchesGround bool
	Obstacles     int
	CreatedAt     time.Time
}

// RecipeStat aggregates results for one recipe across all runs.
type RecipeStat struct {
	RecipeID string
	Accepted int
	Rejected int
	LastCode string // most recent failure code, empty if none
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			finished_at DATETIME,
			accepted INTEGER NOT NULL DEFAULT 0,
			rejected INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			recipe_id TEXT NOT NULL,
			slug TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			valid INTEGER NOT NULL,
			failure_index INTEGER NOT NULL DEFAULT -1,
			code TEXT NOT NULL DEFAULT '',
			reason TEXT NOT NULL DEFAULT '',
			touches_ground INTEGER NOT NULL DEFAULT 0,
			obstacles INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_run_id ON results(run_id);
		CREATE INDEX IF NOT EXISTS idx_results_recipe_id ON results(recipe_id);
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

// BeginRun opens a new run and returns its ID.
func (s *Store) BeginRun(seed int64) (int64, error) {
	res, err := s.db.Exec("INSERT INTO runs (seed) VALUES (?)", seed)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecordResult stores one variant verdict for a run.
func (s *Store) RecordResult(runID int64, o batch.Outcome) error {
	_, err := s.db.Exec(
		`INSERT INTO results
		 (run_id, recipe_id, slug, difficulty, valid, failure_index, code, reason, touches_ground, obstacles)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		o.RecipeID,
		o.Slug,
		o.Difficulty,
		o.Result.Valid,
		o.Result.FailureIndex,
		o.Result.Code,
		o.Result.Reason,
		o.Result.TouchesGround,
		o.Obstacles,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// FinishRun stamps a run with its totals.
func (s *Store) FinishRun(runID int64, sum batch.Summary) error {
	res, err := s.db.Exec(
		`UPDATE runs SET finished_at = CURRENT_TIMESTAMP, accepted = ?, rejected = ? WHERE id = ?`,
		sum.Accepted, sum.Rejected, runID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: run %d not found", runID)
	}
	return nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, started_at, finished_at, accepted, rejected
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAt, finishedAt any
		if err := rows.Scan(&r.ID, &r.Seed, &startedAt, &finishedAt, &r.Accepted, &r.Rejected); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.StartedAt = parseTime(startedAt)
		r.FinishedAt = parseTime(finishedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	var r Run
	var startedAt, finishedAt any

	err := s.db.QueryRow(
		`SELECT id, seed, started_at, finished_at, accepted, rejected FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &startedAt, &finishedAt, &r.Accepted, &r.Rejected)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.StartedAt = parseTime(startedAt)
	r.FinishedAt = parseTime(finishedAt)
	return &r, nil
}

// RunResults retrieves every result recorded for a run, in insertion order.
func (s *Store) RunResults(runID int64) ([]ResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, recipe_id, slug, difficulty, valid, failure_index,
		        code, reason, touches_ground, obstacles, created_at
		 FROM results
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RunID,
			&e.RecipeID,
			&e.Slug,
			&e.Difficulty,
			&e.Valid,
			&e.FailureIndex,
			&e.Code,
			&e.Reason,
			&e.TouchesGround,
			&e.Obstacles,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecipeStats aggregates accepted and rejected counts per recipe, sorted by
// recipe ID.
func (s *Store) RecipeStats() ([]RecipeStat, error) {
	rows, err := s.db.Query(
		`SELECT recipe_id,
		        SUM(CASE WHEN valid THEN 1 ELSE 0 END),
		        SUM(CASE WHEN valid THEN 0 ELSE 1 END),
		        COALESCE((SELECT code FROM results r2
		                  WHERE r2.recipe_id = r.recipe_id AND NOT r2.valid
		                  ORDER BY r2.id DESC LIMIT 1), '')
		 FROM results r
		 GROUP BY recipe_id
		 ORDER BY recipe_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recipe stats: %w", err)
	}
	defer rows.Close()

	var stats []RecipeStat
	for rows.Next() {
		var st RecipeStat
		if err := rows.Scan(&st.RecipeID, &st.Accepted, &st.Rejected, &st.LastCode); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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
