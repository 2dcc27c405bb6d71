package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

const stagingTable = "stg_sales"

// StagingRepository is the append-only staging area plus the status
// transitions that implement the processed watermark. All methods take the
// Queryer of the enclosing batch transaction.
type StagingRepository interface {
	Append(ctx context.Context, q postgres.Queryer, rows []domain.StagedSale) (int, error)
	MarkMerged(ctx context.Context, q postgres.Queryer, batchID string) (int64, error)
	MarkQuarantined(ctx context.Context, q postgres.Queryer, ids []int64) (int64, error)
}

type stagingRepository struct{}

func NewStagingRepository() StagingRepository {
	return &stagingRepository{}
}

// Append inserts the rows as pending and fills in their generated IDs.
// No deduplication happens here; duplicates are a fact-merge concern.
func (r *stagingRepository) Append(ctx context.Context, q postgres.Queryer, rows []domain.StagedSale) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(stagingTable).
		Columns("batch_id", "customer_id", "product_id", "store_id", "sale_date", "quantity", "status")

	for _, row := range rows {
		builder = builder.Values(
			row.BatchID,
			row.CustomerID,
			row.ProductID,
			row.StoreID,
			row.SaleDate.Format(time.DateOnly),
			row.Quantity,
			domain.StagedStatusPending,
		)
	}

	query, args, err := builder.
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building staging insert: %w", err)
	}

	dbRows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("staging insert failed: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("staging insert failed: %w", err)
	}
	defer dbRows.Close()

	ids := make([]int64, 0, len(rows))
	for dbRows.Next() {
		var id int64
		if err := dbRows.Scan(&id); err != nil {
			return 0, fmt.Errorf("scanning staged sale id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := dbRows.Err(); err != nil {
		return 0, fmt.Errorf("reading staged sale ids: %w", err)
	}
	if len(ids) != len(rows) {
		return 0, fmt.Errorf("staging insert returned %d ids for %d rows", len(ids), len(rows))
	}

	// A single multi-VALUES insert draws its serial ids from one sequence in
	// VALUES order, but Postgres does not promise the order RETURNING emits
	// them in. Sorting restores the input order regardless.
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i := range rows {
		rows[i].ID = ids[i]
		rows[i].Status = domain.StagedStatusPending
	}

	return len(ids), nil
}

// MarkMerged flips the batch's pending rows to merged and reports how many
// rows it advanced. Rows already merged or quarantined are untouched, which
// is what lets the orchestrator detect a double application.
func (r *stagingRepository) MarkMerged(ctx context.Context, q postgres.Queryer, batchID string) (int64, error) {
	query, args, err := squirrel.
		Update(stagingTable).
		Set("status", domain.StagedStatusMerged).
		Where(squirrel.Eq{"batch_id": batchID, "status": domain.StagedStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building staging update: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("marking staged sales merged: %w", err)
	}

	return result.RowsAffected()
}

func (r *stagingRepository) MarkQuarantined(ctx context.Context, q postgres.Queryer, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update(stagingTable).
		Set("status", domain.StagedStatusQuarantined).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building staging update: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("quarantining staged sales: %w", err)
	}

	return result.RowsAffected()
}
