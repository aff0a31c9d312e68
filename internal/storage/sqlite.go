// Package storage provides SQLite-based persistence for search runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded search.
type Run struct {
	ID       string
	Source   string // Scenario ID or problem directory
	Mode     string
	Found    bool
	PathLen  int
	Rounds   int
	Expanded int
	Visited  int
	Elapsed  time.Duration
	Outcome  string
	// Health is the starting health the path was found with.
	Health    float64
	CreatedAt time.Time
}

// ModeStats aggregates the runs of one game mode.
type ModeStats struct {
	Mode       string
	Runs       int
	Found      int
	AvgElapsed time.Duration
	AvgPathLen float64
	LastRun    time.Time
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
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			mode TEXT NOT NULL,
			found INTEGER NOT NULL,
			path_len INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			visited INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			health REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
		CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
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

// SaveRun records a run and returns its ID. A run without an ID gets a new
// UUID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, source, mode, found, path_len, rounds, expanded, visited, elapsed_ms, outcome, health)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, run.Mode, run.Found, run.PathLen, run.Rounds, run.Expanded, run.Visited,
		run.Elapsed.Milliseconds(), run.Outcome, run.Health,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

const runColumns = `id, source, mode, found, path_len, rounds, expanded, visited, elapsed_ms, outcome, health, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var r Run
	var elapsedMS int64
	var createdAt any
	err := row.Scan(&r.ID, &r.Source, &r.Mode, &r.Found, &r.PathLen, &r.Rounds, &r.Expanded, &r.Visited,
		&elapsedMS, &r.Outcome, &r.Health, &createdAt)
	if err != nil {
		return r, err
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// RecentRuns retrieves the latest runs, newest first. A non-positive limit
// means 10.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (Run, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return r, ErrNotFound
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// ClearRuns deletes every run of a source, or every run when source is
// empty. It returns the number of deleted runs.
func (s *Store) ClearRuns(source string) (int64, error) {
	var (
		res sql.Result
		err error
	)
	if source == "" {
		res, err = s.db.Exec("DELETE FROM runs")
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE source = ?", source)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count deleted runs: %w", err)
	}
	return n, nil
}

// StatsByMode aggregates the history per game mode.
func (s *Store) StatsByMode() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), SUM(found), AVG(elapsed_ms), COALESCE(AVG(CASE WHEN found THEN path_len END), 0), MAX(created_at)
		 FROM runs
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var avgElapsed float64
		var lastRun any
		if err := rows.Scan(&m.Mode, &m.Runs, &m.Found, &avgElapsed, &m.AvgPathLen, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.AvgElapsed = time.Duration(avgElapsed * float64(time.Millisecond))
		m.LastRun = parseTime(lastRun)
		stats[m.Mode] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
