// Package storage provides SQLite-based persistence for recorded runs.
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

	"github.com/vovakirdan/tui-birds/internal/core"
	"github.com/vovakirdan/tui-birds/internal/replay"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("storage: run not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
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

	// Foreign keys are per connection, so they go in the DSN for every pooled one.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
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
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			config BLOB,
			final_phase TEXT NOT NULL,
			final_score INTEGER NOT NULL DEFAULT 0,
			source TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_events (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			control INTEGER NOT NULL,
			pressed INTEGER NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
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

// SaveRun stores a run with its events in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run replay.Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	res, err := tx.Exec(
		`INSERT INTO runs
		 (game_id, seed, tick_rate, ticks, config, final_phase, final_score, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID,
		run.Seed,
		run.TickRate,
		int64(run.Ticks),
		run.Config,
		run.FinalPhase,
		run.FinalScore,
		run.Source,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO run_events (run_id, seq, tick, control, pressed) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for i, ev := range run.Events {
		if _, err := stmt.Exec(id, i, int64(ev.Tick), int(ev.Control), ev.Pressed); err != nil {
			return 0, fmt.Errorf("storage: cannot save event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// Run loads a run and its events.
// Returns ErrRunNotFound if no run has the given ID.
func (s *Store) Run(id int64) (replay.Run, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, ticks, config, final_phase, final_score, source, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return replay.Run{}, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return replay.Run{}, fmt.Errorf("storage: cannot query run: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT tick, control, pressed
		 FROM run_events
		 WHERE run_id = ?
		 ORDER BY seq`,
		id,
	)
	if err != nil {
		return replay.Run{}, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ev      replay.Event
			tick    int64
			control int
		)
		if err := rows.Scan(&tick, &control, &ev.Pressed); err != nil {
			return replay.Run{}, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		ev.Tick = uint64(tick)
		ev.Control = core.Control(control)
		run.Events = append(run.Events, ev)
	}
	if err := rows.Err(); err != nil {
		return replay.Run{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return run, nil
}

// RecentRuns returns the newest runs first, without their events.
func (s *Store) RecentRuns(limit int) ([]replay.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, tick_rate, ticks, config, final_phase, final_score, source, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []replay.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// DeleteRun removes a run and its events.
// Returns ErrRunNotFound if no run has the given ID.
func (s *Store) DeleteRun(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec("DELETE FROM run_events WHERE run_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// timeLayout is how created_at is written; SQLite's CURRENT_TIMESTAMP uses the same form.
const timeLayout = "2006-01-02 15:04:05"

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (replay.Run, error) {
	var (
		run       replay.Run
		ticks     int64
		createdAt any
	)
	err := sc.Scan(
		&run.ID,
		&run.GameID,
		&run.Seed,
		&run.TickRate,
		&ticks,
		&run.Config,
		&run.FinalPhase,
		&run.FinalScore,
		&run.Source,
		&createdAt,
	)
	if err != nil {
		return replay.Run{}, err
	}
	run.Ticks = uint64(ticks)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		run.CreatedAt = v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			run.CreatedAt = parsed
		}
	}
	return run, nil
}
