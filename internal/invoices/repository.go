package invoices

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("invoice not found")

type Repository interface {
	Latest(ctx context.Context, limit int) ([]LatestInvoice, error)
	Filtered(ctx context.Context, query string, limit, offset int) ([]InvoiceRow, error)
	CountFiltered(ctx context.Context, query string) (int, error)
	ByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
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

// filterPredicate matches the table search box: one pattern against the
// joined customer columns plus the invoice's own status, amount, and
// date rendered as text, so searching "2023" hits dates and "200" hits
// amounts.
const filterPredicate = `
	c.name ILIKE $1 OR
	c.email ILIKE $1 OR
	i.status ILIKE $1 OR
	i.amount::text ILIKE $1 OR
	i.date::text ILIKE $1`

func (r *repository) Latest(ctx context.Context, limit int) ([]LatestInvoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.amount, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		ORDER BY i.date DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []LatestInvoice
	for rows.Next() {
		var inv LatestInvoice
		if err := rows.Scan(&inv.ID, &inv.Amount, &inv.Name, &inv.Email, &inv.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, inv)
	}

	return result, rows.Err()
}

func (r *repository) Filtered(ctx context.Context, query string, limit, offset int) ([]InvoiceRow, error) {
	sql := fmt.Sprintf(`
		SELECT i.id, i.amount, i.date, i.status, c.name, c.email, c.image_url
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE %s
		ORDER BY i.date DESC
		LIMIT $2 OFFSET $3
	`, filterPredicate)

	rows, err := r.db.Query(ctx, sql, searchPattern(query), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []InvoiceRow
	for rows.Next() {
		var row InvoiceRow
		if err := rows.Scan(&row.ID, &row.Amount, &row.Date, &row.Status, &row.Name, &row.Email, &row.ImageURL); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

func (r *repository) CountFiltered(ctx context.Context, query string) (int, error) {
	sql := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE %s
	`, filterPredicate)

	var count int
	if err := r.db.QueryRow(ctx, sql, searchPattern(query)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	var inv Invoice
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, amount, status, date
		FROM invoices
		WHERE id = $1
	`, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func searchPattern(query string) string {
	return "%" + query + "%"
}
