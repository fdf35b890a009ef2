package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/corpus"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/freq"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/internalerr"
	"github.com/godfreymahlangu/JHU-Data-Science-Capstone-master/pkg/vocab/store"
)

// sqliteStore implements store.Store using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes
// the schema.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	seed INTEGER NOT NULL,
	sample_fraction REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS source_summaries (
	run_id TEXT NOT NULL,
	source TEXT NOT NULL,
	size_bytes INTEGER NOT NULL,
	lines INTEGER NOT NULL,
	chars INTEGER NOT NULL,
	words INTEGER NOT NULL,
	UNIQUE(run_id, source),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS coverage_sets (
	run_id TEXT NOT NULL,
	granularity INTEGER NOT NULL,
	threshold REAL NOT NULL,
	total_tokens INTEGER NOT NULL,
	distinct_tokens INTEGER NOT NULL,
	UNIQUE(run_id, granularity, threshold),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS coverage_entries (
	run_id TEXT NOT NULL,
	granularity INTEGER NOT NULL,
	threshold REAL NOT NULL,
	pos INTEGER NOT NULL,
	token TEXT NOT NULL,
	count INTEGER NOT NULL,
	proportion REAL NOT NULL,
	cumulative REAL NOT NULL,
	UNIQUE(run_id, granularity, threshold, pos),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_coverage_entries_set
	ON coverage_entries(run_id, granularity, threshold);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun inserts or replaces a run row.
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("%w: run id required", internalerr.ErrInvalidInput)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, seed, sample_fraction)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			seed = excluded.seed,
			sample_fraction = excluded.sample_fraction`,
		r.ID, r.CreatedAt.Format(time.RFC3339Nano), r.Seed, r.SampleFraction)
	return err
}

// GetRun returns a run by ID.
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, seed, sample_fraction FROM runs WHERE id = ?`, id)
	return scanRun(row)
}

// ListRuns returns all runs, oldest first. ULID run IDs sort by
// creation time, so ordering by ID is chronological.
func (s *sqliteStore) ListRuns(ctx context.Context) ([]store.Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, seed, sample_fraction FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(row rowScanner) (store.Run, error) {
	var r store.Run
	var createdAt string
	if err := row.Scan(&r.ID, &createdAt, &r.Seed, &r.SampleFraction); err != nil {
		if err == sql.ErrNoRows {
			return store.Run{}, internalerr.ErrNotFound
		}
		return store.Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("parse run timestamp: %w", err)
	}
	r.CreatedAt = t
	return r, nil
}

// SaveSummaries replaces the per-source summaries for a run.
func (s *sqliteStore) SaveSummaries(ctx context.Context, runID string, sums []corpus.Summary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM source_summaries WHERE run_id = ?`, runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO source_summaries (run_id, source, size_bytes, lines, chars, words)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sum := range sums {
		if _, err := stmt.ExecContext(ctx,
			runID, sum.Source, sum.SizeBytes, sum.Lines, sum.Chars, sum.Words); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetSummaries returns a run's summaries ordered by source name.
func (s *sqliteStore) GetSummaries(ctx context.Context, runID string) ([]corpus.Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, size_bytes, lines, chars, words
		FROM source_summaries WHERE run_id = ? ORDER BY source`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []corpus.Summary
	for rows.Next() {
		var sum corpus.Summary
		if err := rows.Scan(&sum.Source, &sum.SizeBytes, &sum.Lines, &sum.Chars, &sum.Words); err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}
	return sums, rows.Err()
}

// SaveCoverage replaces one coverage table for a run. Entries are
// stored with their rank position so readback preserves the
// deterministic order.
func (s *sqliteStore) SaveCoverage(ctx context.Context, runID string, table store.CoverageTable) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM coverage_entries
		WHERE run_id = ? AND granularity = ? AND threshold = ?`,
		runID, table.Granularity, table.Threshold); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO coverage_sets (run_id, granularity, threshold, total_tokens, distinct_tokens)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(run_id, granularity, threshold) DO UPDATE SET
			total_tokens = excluded.total_tokens,
			distinct_tokens = excluded.distinct_tokens`,
		runID, table.Granularity, table.Threshold, table.TotalTokens, table.DistinctTokens); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO coverage_entries (run_id, granularity, threshold, pos, token, count, proportion, cumulative)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range table.Entries {
		if _, err := stmt.ExecContext(ctx,
			runID, table.Granularity, table.Threshold,
			i, e.Token, e.Count, e.Proportion, e.Cumulative); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetCoverage loads one coverage table, entries in rank order.
func (s *sqliteStore) GetCoverage(ctx context.Context, runID string, granularity int, threshold float64) (store.CoverageTable, error) {
	var table store.CoverageTable
	err := s.db.QueryRowContext(ctx, `
		SELECT granularity, threshold, total_tokens, distinct_tokens
		FROM coverage_sets
		WHERE run_id = ? AND granularity = ? AND threshold = ?`,
		runID, granularity, threshold).
		Scan(&table.Granularity, &table.Threshold, &table.TotalTokens, &table.DistinctTokens)
	if err != nil {
		if err == sql.ErrNoRows {
			return store.CoverageTable{}, internalerr.ErrNotFound
		}
		return store.CoverageTable{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT token, count, proportion, cumulative
		FROM coverage_entries
		WHERE run_id = ? AND granularity = ? AND threshold = ?
		ORDER BY pos`,
		runID, granularity, threshold)
	if err != nil {
		return store.CoverageTable{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var e freq.CoverageEntry
		if err := rows.Scan(&e.Token, &e.Count, &e.Proportion, &e.Cumulative); err != nil {
			return store.CoverageTable{}, err
		}
		table.Entries = append(table.Entries, e)
	}
	return table, rows.Err()
}
