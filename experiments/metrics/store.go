package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS results (
	experiment  TEXT NOT NULL,
	solver      TEXT NOT NULL,
	games       INTEGER NOT NULL,
	win_rate    REAL NOT NULL,
	avg_guesses REAL NOT NULL,
	PRIMARY KEY (experiment, solver)
);
CREATE TABLE IF NOT EXISTS games (
	experiment  TEXT NOT NULL,
	id          INTEGER NOT NULL,
	solver      TEXT NOT NULL,
	secret      TEXT NOT NULL,
	won         INTEGER NOT NULL,
	guesses     INTEGER NOT NULL,
	no_move     INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL,
	PRIMARY KEY (experiment, id)
);`

// Store keeps experiment results in a SQLite database so runs can be
// compared later.
type Store struct {
	db *sql.DB
}

func OpenStore(dsn string) (*Store, error) {
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
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) InsertResults(ctx context.Context, experiment string, results []Result) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, r := range results {
			_, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO results (experiment, solver, games, win_rate, avg_guesses) VALUES (?, ?, ?, ?, ?)`,
				experiment, r.Solver, r.Games, r.WinRate, r.AvgGuesses)
			if err != nil {
				return fmt.Errorf("insert result for %s: %w", r.Solver, err)
			}
		}
		return nil
	})
}

func (s *Store) InsertGameRecords(ctx context.Context, experiment string, records []GameRecord) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, r := range records {
			_, err := tx.ExecContext(ctx,
				`INSERT OR REPLACE INTO games (experiment, id, solver, secret, won, guesses, no_move, duration_ns) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				experiment, r.ID, r.Solver, r.Secret, r.Won, r.Guesses, r.NoMove, r.Duration.Nanoseconds())
			if err != nil {
				return fmt.Errorf("insert game %d: %w", r.ID, err)
			}
		}
		return nil
	})
}

// Results returns the stored results of an experiment ordered by solver.
func (s *Store) Results(ctx context.Context, experiment string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT solver, games, win_rate, avg_guesses FROM results WHERE experiment = ? ORDER BY solver`, experiment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Solver, &r.Games, &r.WinRate, &r.AvgGuesses); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// CountGames returns how many games of an experiment are stored.
func (s *Store) CountGames(ctx context.Context, experiment string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE experiment = ?`, experiment).Scan(&n)
	return n, err
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
