package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/domain"
)

const (
	customerDimTable = "dim_customer"
	productDimTable  = "dim_product"
	storeDimTable    = "dim_store"
)

// DimensionRepository upserts the three mutable dimensions in bulk. Each
// upsert keys on the business key: an unseen key gets a fresh surrogate key,
// a known key has its attributes replaced (last-write-wins). The surrogate
// key mapping comes back from the same statement via RETURNING, so resolving
// keys costs no extra round trip.
//
// Callers must not pass the same business key twice in one call: Postgres
// rejects an ON CONFLICT DO UPDATE that touches a row twice. The reconciler
// collapses duplicates before calling in.
type DimensionRepository interface {
	UpsertCustomers(ctx context.Context, q postgres.Queryer, customers []domain.Customer) (map[string]int64, error)
	UpsertProducts(ctx context.Context, q postgres.Queryer, products []domain.Product) (map[string]int64, map[string]float64, error)
	UpsertStores(ctx context.Context, q postgres.Queryer, stores []domain.Store) (map[string]int64, error)
}

type dimensionRepository struct{}

func NewDimensionRepository() DimensionRepository {
	return &dimensionRepository{}
}

func (r *dimensionRepository) UpsertCustomers(ctx context.Context, q postgres.Queryer, customers []domain.Customer) (map[string]int64, error) {
	keys := make(map[string]int64, len(customers))
	if len(customers) == 0 {
		return keys, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(customerDimTable).
		Columns("customer_id", "customer_name", "region")

	for _, c := range customers {
		builder = builder.Values(c.CustomerID, c.CustomerName, c.Region)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (customer_id) DO UPDATE SET
				customer_name = EXCLUDED.customer_name,
				region = EXCLUDED.region,
				updated_at = NOW()
			RETURNING customer_key, customer_id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building customer upsert: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError("customer upsert failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surrogateKey int64
		var businessKey string
		if err := rows.Scan(&surrogateKey, &businessKey); err != nil {
			return nil, fmt.Errorf("scanning customer keys: %w", err)
		}
		keys[businessKey] = surrogateKey
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading customer keys: %w", err)
	}

	return keys, nil
}

func (r *dimensionRepository) UpsertProducts(ctx context.Context, q postgres.Queryer, products []domain.Product) (map[string]int64, map[string]float64, error) {
	keys := make(map[string]int64, len(products))
	prices := make(map[string]float64, len(products))
	if len(products) == 0 {
		return keys, prices, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(productDimTable).
		Columns("product_id", "product_name", "category", "price")

	for _, p := range products {
		builder = builder.Values(p.ProductID, p.ProductName, p.Category, p.Price)
	}

	// RETURNING price hands back the post-upsert unit price, which is the
	// "current price" the fact merge computes amounts with.
	query, args, err := builder.
		Suffix(`
			ON CONFLICT (product_id) DO UPDATE SET
				product_name = EXCLUDED.product_name,
				category = EXCLUDED.category,
				price = EXCLUDED.price,
				updated_at = NOW()
			RETURNING product_key, product_id, price
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("building product upsert: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapPqError("product upsert failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surrogateKey int64
		var businessKey string
		var price float64
		if err := rows.Scan(&surrogateKey, &businessKey, &price); err != nil {
			return nil, nil, fmt.Errorf("scanning product keys: %w", err)
		}
		keys[businessKey] = surrogateKey
		prices[businessKey] = price
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading product keys: %w", err)
	}

	return keys, prices, nil
}

func (r *dimensionRepository) UpsertStores(ctx context.Context, q postgres.Queryer, stores []domain.Store) (map[string]int64, error) {
	keys := make(map[string]int64, len(stores))
	if len(stores) == 0 {
		return keys, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(storeDimTable).
		Columns("store_id", "store_name", "location")

	for _, s := range stores {
		builder = builder.Values(s.StoreID, s.StoreName, s.Location)
	}

	query, args, err := builder.
		Suffix(`
			ON CONFLICT (store_id) DO UPDATE SET
				store_name = EXCLUDED.store_name,
				location = EXCLUDED.location,
				updated_at = NOW()
			RETURNING store_key, store_id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building store upsert: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPqError("store upsert failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var surrogateKey int64
		var businessKey string
		if err := rows.Scan(&surrogateKey, &businessKey); err != nil {
			return nil, fmt.Errorf("scanning store keys: %w", err)
		}
		keys[businessKey] = surrogateKey
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading store keys: %w", err)
	}

	return keys, nil
}

func wrapPqError(msg string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return fmt.Errorf("%s: %w (code: %s)", msg, pqErr, pqErr.Code)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
