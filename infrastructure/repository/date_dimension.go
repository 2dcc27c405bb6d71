package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

const dateDimTable = "dim_date"

// DateDimensionRepository inserts dim_date rows for dates not yet present.
// Date rows are immutable: the conflict action is DO NOTHING, never an
// update, so a row created by an earlier run is never rewritten.
type DateDimensionRepository interface {
	EnsureDates(ctx context.Context, q postgres.Queryer, entries []domain.DateDimensionEntry) error
}

type dateDimensionRepository struct{}

func NewDateDimensionRepository() DateDimensionRepository {
	return &dateDimensionRepository{}
}

func (r *dateDimensionRepository) EnsureDates(ctx context.Context, q postgres.Queryer, entries []domain.DateDimensionEntry) error {
	if len(entries) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(dateDimTable).
		Columns("date_key", "date_value", "year", "month", "day")

	for _, e := range entries {
		builder = builder.Values(
			e.DateKey,
			e.DateValue.Format(time.DateOnly),
			e.Year,
			e.Month,
			e.Day,
		)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (date_key) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building date dimension insert: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapPqError("date dimension insert failed", err)
	}

	return nil
}
