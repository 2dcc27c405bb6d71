package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

const loadRunsTable = "load_runs"

// LoadRunRepository keeps the audit trail of orchestrated runs. Records are
// written outside the load transaction so a rolled-back run still leaves its
// trail behind.
type LoadRunRepository interface {
	Record(ctx context.Context, q postgres.Queryer, run *domain.LoadRun) error
	ListRecent(ctx context.Context, q postgres.Queryer, limit int) ([]*domain.LoadRun, error)
}

type loadRunRepository struct{}

func NewLoadRunRepository() LoadRunRepository {
	return &loadRunRepository{}
}

func (r *loadRunRepository) Record(ctx context.Context, q postgres.Queryer, run *domain.LoadRun) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(loadRunsTable).
		Columns("id", "batch_id", "processed", "quarantined", "status", "stage", "error", "started_at", "finished_at").
		Values(
			run.ID,
			run.BatchID,
			run.Processed,
			run.Quarantined,
			run.Status,
			run.Stage,
			run.Error,
			run.StartedAt,
			run.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building load run insert: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapPqError("load run insert failed", err)
	}

	return nil
}

func (r *loadRunRepository) ListRecent(ctx context.Context, q postgres.Queryer, limit int) ([]*domain.LoadRun, error) {
	query, args, err := squirrel.
		Select("id", "batch_id", "processed", "quarantined", "status", "stage", "error", "started_at", "finished_at").
		From(loadRunsTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building load run select: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing load runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.LoadRun, 0)
	for rows.Next() {
		run := &domain.LoadRun{}
		if err := rows.Scan(
			&run.ID,
			&run.BatchID,
			&run.Processed,
			&run.Quarantined,
			&run.Status,
			&run.Stage,
			&run.Error,
			&run.StartedAt,
			&run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning load run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading load runs: %w", err)
	}

	return runs, nil
}
