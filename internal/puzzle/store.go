package puzzle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	apperrors "github.com/lgbarn/mate-puzzle-go/internal/errors"
	"github.com/lgbarn/mate-puzzle-go/internal/puzzle/migrations"
)

// Store keeps puzzles in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required: %w", apperrors.ErrInvalidConfig)
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := applyMigrations(ctx, db, migrations.FS, s.now); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import inserts puzzles, skipping any already stored with the same
// position and solution. It returns the number inserted.
func (s *Store) Import(ctx context.Context, puzzles []Puzzle, source string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO puzzles (position, solution, source, mate_in, imported_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	importedAt := s.now().UTC().UnixMilli()
	inserted := 0
	for _, p := range puzzles {
		_, err := stmt.ExecContext(ctx, p.Position, p.Answer(), source, p.MateIn(), importedAt)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("insert puzzle %s: %w", p.ID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return inserted, nil
}

// Puzzles returns every stored puzzle in insertion order.
func (s *Store) Puzzles(ctx context.Context) ([]Puzzle, error) {
	return s.query(ctx, `SELECT id, position, solution FROM puzzles ORDER BY id`)
}

// PuzzlesMateIn returns the stored puzzles needing n solver moves.
func (s *Store) PuzzlesMateIn(ctx context.Context, n int) ([]Puzzle, error) {
	return s.query(ctx, `SELECT id, position, solution FROM puzzles WHERE mate_in = ? ORDER BY id`, n)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]Puzzle, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query puzzles: %w", err)
	}
	defer rows.Close()

	var puzzles []Puzzle
	for rows.Next() {
		var (
			id                 int64
			position, solution string
		)
		if err := rows.Scan(&id, &position, &solution); err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		p, err := Parse(strconv.FormatInt(id, 10), position, solution)
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate puzzles: %w", err)
	}
	return puzzles, nil
}

// Count returns the number of stored puzzles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM puzzles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count puzzles: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ Source = (*Store)(nil)
