package postgres

import (
	"context"
	"database/sql"
)

// Queryer is the subset of database operations shared by *sql.DB and *sql.Tx.
// Repositories are written against it so the same query code runs standalone
// or inside the single batch-load transaction.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
