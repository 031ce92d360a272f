package customers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]CustomerField, error)
	Filtered(ctx context.Context, query string) ([]CustomerSummary, error)
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

func (r *repository) List(ctx context.Context) ([]CustomerField, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name
		FROM customers
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CustomerField
	for rows.Next() {
		var c CustomerField
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

func (r *repository) Filtered(ctx context.Context, query string) ([]CustomerSummary, error) {
	// One aggregate pass instead of an invoice fetch per customer.
	// COUNT ignores NULLs from the left join, so invoice-less customers
	// come back with zero totals.
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.email, c.image_url,
		       COUNT(i.id) AS total_invoices,
		       COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'pending'), 0) AS total_pending,
		       COALESCE(SUM(i.amount) FILTER (WHERE i.status = 'paid'), 0) AS total_paid
		FROM customers c
		LEFT JOIN invoices i ON c.id = i.customer_id
		WHERE c.name ILIKE $1 OR c.email ILIKE $1
		GROUP BY c.id, c.name, c.email, c.image_url
		ORDER BY c.name ASC
	`, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CustomerSummary
	for rows.Next() {
		var c CustomerSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL, &c.TotalInvoices, &c.TotalPending, &c.TotalPaid); err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, rows.Err()
}
