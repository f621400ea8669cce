package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/mcorpas/podarc/internal/domain"
)

// RecordRun saves or refreshes one fetch run row.
func (s *ArchiveStore) RecordRun(ctx context.Context, run *domain.FetchRun) error {
	var finished sql.NullInt64
	if !run.FinishedAt.IsZero() {
		finished = sql.NullInt64{Int64: run.FinishedAt.Unix(), Valid: true}
	}

	query := `INSERT OR REPLACE INTO fetch_runs (id, status, started_at, finished_at, error)
              VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		string(run.Status),
		run.StartedAt.Unix(),
		finished,
		run.Error,
	)
	return err
}

// RecordResult saves the outcome of one manifest entry within a run.
func (s *ArchiveStore) RecordResult(ctx context.Context, res *domain.FetchResult) error {
	query := `INSERT OR REPLACE INTO fetch_results (run_id, idx, title, url, dest, bytes, status, error)
              VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		res.RunID,
		res.Index,
		res.Title,
		res.URL,
		res.Dest,
		res.Bytes,
		string(res.Status),
		res.Error,
	)
	return err
}

// ListRuns returns every recorded run, oldest first.
func (s *ArchiveStore) ListRuns(ctx context.Context) ([]*domain.FetchRun, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, status, started_at, finished_at, error FROM fetch_runs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.FetchRun
	for rows.Next() {
		run := &domain.FetchRun{}
		var started int64
		var finished sql.NullInt64
		var status string

		if err := rows.Scan(&run.ID, &status, &started, &finished, &run.Error); err != nil {
			return nil, err
		}

		run.Status = domain.FetchStatus(status)
		run.StartedAt = time.Unix(started, 0).UTC()
		if finished.Valid {
			run.FinishedAt = time.Unix(finished.Int64, 0).UTC()
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Sort by KSUID (Chronological)
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].ID < runs[j].ID
	})

	return runs, nil
}

// ListResults returns the per-entry outcomes of one run in manifest order.
func (s *ArchiveStore) ListResults(ctx context.Context, runID string) ([]*domain.FetchResult, error) {
	query := `SELECT run_id, idx, title, url, dest, bytes, status, error
              FROM fetch_results WHERE run_id = ? ORDER BY idx`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*domain.FetchResult
	for rows.Next() {
		res := &domain.FetchResult{}
		var status string

		if err := rows.Scan(&res.RunID, &res.Index, &res.Title, &res.URL, &res.Dest,
			&res.Bytes, &status, &res.Error); err != nil {
			return nil, err
		}

		res.Status = domain.FetchStatus(status)
		results = append(results, res)
	}

	return results, rows.Err()
}
