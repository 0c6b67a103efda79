// internal/results/store.go
//
// SQLite-backed store for solver evaluation runs.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Creating the solver_runs schema (idempotent).
//   - Recording one row per played game and aggregating per-solver
//     summaries (games, wins, average guesses on wins, average latency).
//
// This records run *results* only; word lists and pattern matrices are
// never persisted here.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS solver_runs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    solver        TEXT    NOT NULL,
    secret        TEXT    NOT NULL,
    won           INTEGER NOT NULL,
    guesses       INTEGER NOT NULL,
    nodes_visited INTEGER NOT NULL DEFAULT 0,
    elapsed_ms    INTEGER NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_solver_runs_solver ON solver_runs(solver);
`

// Run is one recorded game.
type Run struct {
	Solver       string
	Secret       string
	Won          bool
	Guesses      int
	NodesVisited int
	ElapsedMs    int
}

// Summary aggregates every recorded run of one solver.
type Summary struct {
	Solver       string
	Games        int
	Wins         int
	AvgGuesses   float64 // over won games; 0 when no wins
	AvgElapsedMs float64
}

// Store wraps the results database.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) the SQLite database at dsn.
//
//   - Ensures the parent directory exists for relative DSNs
//     (e.g. ./data/results.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Applies the schema.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// InsertRun records one played game.
func (s *Store) InsertRun(ctx context.Context, r Run) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO solver_runs
            (solver, secret, won, guesses, nodes_visited, elapsed_ms)
        VALUES (?, ?, ?, ?, ?, ?)`,
		r.Solver, r.Secret, boolToInt(r.Won), r.Guesses, r.NodesVisited, r.ElapsedMs,
	)
	return err
}

// Summaries aggregates all recorded runs per solver, ordered by solver
// name.
func (s *Store) Summaries(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT solver,
               COUNT(1),
               COALESCE(SUM(won), 0),
               AVG(CASE WHEN won = 1 THEN guesses END),
               AVG(elapsed_ms)
        FROM solver_runs
        GROUP BY solver
        ORDER BY solver`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		var avgGuesses, avgElapsed sql.NullFloat64
		if err := rows.Scan(&sm.Solver, &sm.Games, &sm.Wins, &avgGuesses, &avgElapsed); err != nil {
			return nil, err
		}
		sm.AvgGuesses = avgGuesses.Float64
		sm.AvgElapsedMs = avgElapsed.Float64
		out = append(out, sm)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
