// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resultstore persists completed pipeline results in SQLite so
// past runs can be listed, reloaded, and exported without reprocessing.
// Implements: prd005-store (R1-R4);
//
//	docs/ARCHITECTURE.md § Result Store.
package resultstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/ee-scout/pkg/types"
)

const dbFile = "results.db"

// Store manages the result database.
type Store struct {
	db      *sql.DB
	maxRuns int
}

// NewStore opens or creates the result database at storeDir/results.db.
// It creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StoreDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.StoreDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, maxRuns: cfg.MaxRuns}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			query TEXT NOT NULL,
			total_findings INTEGER NOT NULL,
			pipeline_stages INTEGER NOT NULL,
			processed_at TEXT NOT NULL,
			report TEXT NOT NULL,
			result TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_processed_at ON runs(processed_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save persists a completed result. The full result is stored as JSON next
// to the queryable metadata columns. When MaxRuns is set, the oldest runs
// beyond the limit are pruned.
func (s *Store) Save(ctx context.Context, result *types.Result) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, query, total_findings, pipeline_stages, processed_at, report, result)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id) DO UPDATE SET
			query=excluded.query, total_findings=excluded.total_findings,
			pipeline_stages=excluded.pipeline_stages, processed_at=excluded.processed_at,
			report=excluded.report, result=excluded.result`,
		result.Metadata.RunID, result.Query.Query,
		result.Metadata.TotalFindings, result.Metadata.PipelineStages,
		result.Metadata.ProcessedAt.UTC().Format(time.RFC3339Nano),
		result.Report, string(blob),
	)
	if err != nil {
		return fmt.Errorf("inserting run %s: %w", result.Metadata.RunID, err)
	}

	if s.maxRuns > 0 {
		if err := s.prune(ctx); err != nil {
			return fmt.Errorf("pruning old runs: %w", err)
		}
	}
	return nil
}

func (s *Store) prune(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE run_id NOT IN (
			SELECT run_id FROM runs ORDER BY processed_at DESC LIMIT ?
		)`, s.maxRuns)
	return err
}

// RunSummary is one row of the run listing.
type RunSummary struct {
	RunID         string
	Query         string
	TotalFindings int
	ProcessedAt   time.Time
}

// List returns run summaries, most recent first.
func (s *Store) List(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, query, total_findings, processed_at
		 FROM runs ORDER BY processed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var rs RunSummary
		var processedAt string
		if err := rows.Scan(&rs.RunID, &rs.Query, &rs.TotalFindings, &processedAt); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, processedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing processed_at %q: %w", processedAt, err)
		}
		rs.ProcessedAt = t
		summaries = append(summaries, rs)
	}
	return summaries, rows.Err()
}

// Get loads the full result for a run ID.
func (s *Store) Get(ctx context.Context, runID string) (*types.Result, error) {
	var blob string
	err := s.db.QueryRowContext(ctx,
		`SELECT result FROM runs WHERE run_id = ?`, runID,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", runID, err)
	}

	var result types.Result
	if err := json.Unmarshal([]byte(blob), &result); err != nil {
		return nil, fmt.Errorf("parsing stored result %s: %w", runID, err)
	}
	return &result, nil
}

// Report loads only the rendered markdown report for a run ID.
func (s *Store) Report(ctx context.Context, runID string) (string, error) {
	var report string
	err := s.db.QueryRowContext(ctx,
		`SELECT report FROM runs WHERE run_id = ?`, runID,
	).Scan(&report)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return "", fmt.Errorf("querying run %s: %w", runID, err)
	}
	return report, nil
}

// Delete removes a run from the store.
func (s *Store) Delete(ctx context.Context, runID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", runID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run %s: %w", runID, err)
	}
	if n == 0 {
		return fmt.Errorf("run %s not found", runID)
	}
	return nil
}

// FormatTable writes run summaries as a human-readable table to w.
func FormatTable(summaries []RunSummary, w io.Writer) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, "No stored runs.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-40s  %-8s  %s\n", "Run ID", "Query", "Findings", "Processed")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, rs := range summaries {
		query := rs.Query
		if len(query) > 40 {
			query = query[:37] + "..."
		}
		fmt.Fprintf(w, "%-36s  %-40s  %-8d  %s\n",
			rs.RunID, query, rs.TotalFindings,
			rs.ProcessedAt.UTC().Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(w, "\n%d runs\n", len(summaries))
}
