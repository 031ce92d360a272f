package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	CountInvoices(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	SumInvoicesByStatus(ctx context.Context, status string) (int64, error)
}

type dbtx interface {
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM invoices").Scan(&count)
	return count, err
}

func (r *repository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)
	return count, err
}

func (r *repository) SumInvoicesByStatus(ctx context.Context, status string) (int64, error) {
	// COALESCE keeps an empty table from coming back as NULL.
	var sum int64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1", status).Scan(&sum)
	return sum, err
}
