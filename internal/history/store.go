package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

//go:embed schema.sql
var schemaDDL string

// Attempt is one finished quiz run.
type Attempt struct {
	ID          string    `json:"id"`
	Fingerprint string    `json:"fingerprint"`
	Source      string    `json:"source"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	FinishedAt  time.Time `json:"finished_at"`
}

// Percentage returns the score as a whole percentage of total.
func (a Attempt) Percentage() int {
	if a.Total == 0 {
		return 0
	}
	return a.Score * 100 / a.Total
}

// Store records attempts in a DuckDB database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at path. An empty path opens
// an in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("history: context is nil")
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores a finished attempt and returns it with its id and timestamp.
func (s *Store) Record(ctx context.Context, fingerprint, source string, score, total int) (Attempt, error) {
	if score < 0 || score > total {
		return Attempt{}, fmt.Errorf("history: score %d out of range for %d questions", score, total)
	}
	attempt := Attempt{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		Source:      source,
		Score:       score,
		Total:       total,
		FinishedAt:  s.now().UTC().Truncate(time.Microsecond),
	}
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO attempts (attempt_id, fingerprint, source, score, total, finished_at)
		 VALUES (CAST(? AS UUID), ?, ?, ?, ?, ?)`,
		attempt.ID,
		attempt.Fingerprint,
		attempt.Source,
		attempt.Score,
		attempt.Total,
		attempt.FinishedAt,
	); err != nil {
		return Attempt{}, fmt.Errorf("record attempt: %w", err)
	}
	return attempt, nil
}

// Recent lists the latest attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT CAST(attempt_id AS VARCHAR), fingerprint, source, score, total, finished_at
		 FROM attempts
		 ORDER BY finished_at DESC, attempt_id
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()
	return scanAttempts(rows)
}

// Best returns the highest scoring attempt for a quiz fingerprint.
func (s *Store) Best(ctx context.Context, fingerprint string) (Attempt, bool, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT CAST(attempt_id AS VARCHAR), fingerprint, source, score, total, finished_at
		 FROM attempts
		 WHERE fingerprint = ?
		 ORDER BY CAST(score AS DOUBLE) / GREATEST(total, 1) DESC, score DESC, finished_at ASC
		 LIMIT 1`,
		fingerprint,
	)
	if err != nil {
		return Attempt{}, false, fmt.Errorf("best attempt: %w", err)
	}
	defer rows.Close()
	attempts, err := scanAttempts(rows)
	if err != nil {
		return Attempt{}, false, err
	}
	if len(attempts) == 0 {
		return Attempt{}, false, nil
	}
	return attempts[0], true, nil
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	var attempts []Attempt
	for rows.Next() {
		var attempt Attempt
		if err := rows.Scan(
			&attempt.ID,
			&attempt.Fingerprint,
			&attempt.Source,
			&attempt.Score,
			&attempt.Total,
			&attempt.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return attempts, nil
}
