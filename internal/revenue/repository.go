package revenue

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Revenue, error)
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

func (r *repository) List(ctx context.Context) ([]Revenue, error) {
	rows, err := r.db.Query(ctx, "SELECT month, revenue FROM revenue")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Revenue
	for rows.Next() {
		var rev Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}

	return result, rows.Err()
}
