package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

const factSalesTable = "fact_sales"

// FactSalesRepository applies additive deltas to the fact table. A new
// composite key inserts the delta as a fresh row; an existing key has the
// delta ADDED onto its totals. A fact row is never overwritten wholesale —
// that is what keeps historical totals safe across incremental loads.
type FactSalesRepository interface {
	Accumulate(ctx context.Context, q postgres.Queryer, deltas []domain.FactDelta) error
	Get(ctx context.Context, q postgres.Queryer, key domain.FactKey) (*domain.FactDelta, error)
}

type factSalesRepository struct{}

func NewFactSalesRepository() FactSalesRepository {
	return &factSalesRepository{}
}

// Accumulate expects at most one delta per composite key; the merger groups
// staged sales before calling in.
func (r *factSalesRepository) Accumulate(ctx context.Context, q postgres.Queryer, deltas []domain.FactDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(factSalesTable).
		Columns("date_key", "customer_key", "product_key", "store_key", "quantity", "total_amount")

	for _, d := range deltas {
		builder = builder.Values(
			d.Key.DateKey,
			d.Key.CustomerKey,
			d.Key.ProductKey,
			d.Key.StoreKey,
			d.Quantity,
			d.TotalAmount,
		)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (date_key, customer_key, product_key, store_key) DO UPDATE SET
				quantity = fact_sales.quantity + EXCLUDED.quantity,
				total_amount = fact_sales.total_amount + EXCLUDED.total_amount,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building fact upsert: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return wrapPqError("fact upsert failed", err)
	}

	return nil
}

// Get reads the accumulated totals for one composite key; nil when absent.
func (r *factSalesRepository) Get(ctx context.Context, q postgres.Queryer, key domain.FactKey) (*domain.FactDelta, error) {
	query, args, err := squirrel.
		Select("date_key", "customer_key", "product_key", "store_key", "quantity", "total_amount").
		From(factSalesTable).
		Where(squirrel.Eq{
			"date_key":     key.DateKey,
			"customer_key": key.CustomerKey,
			"product_key":  key.ProductKey,
			"store_key":    key.StoreKey,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building fact select: %w", err)
	}

	row := q.QueryRowContext(ctx, query, args...)

	fact := &domain.FactDelta{}
	err = row.Scan(
		&fact.Key.DateKey,
		&fact.Key.CustomerKey,
		&fact.Key.ProductKey,
		&fact.Key.StoreKey,
		&fact.Quantity,
		&fact.TotalAmount,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning fact row: %w", err)
	}

	return fact, nil
}
