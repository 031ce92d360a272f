package customers

import (
	"context"
	"log/slog"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

type Service struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

// List returns every customer as an id/name pair, ordered by name.
func (s *Service) List(ctx context.Context) ([]CustomerField, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("database error", slog.String("op", "list customers"), slog.Any("error", err))
		return nil, shared.NewDataAccessError("all customers", err)
	}
	return rows, nil
}

// Filtered returns customers whose name or email contains the query,
// each with invoice count and per-status totals. The empty query
// matches every customer.
func (s *Service) Filtered(ctx context.Context, query string) ([]CustomerSummary, error) {
	rows, err := s.repo.Filtered(ctx, query)
	if err != nil {
		s.logger.Error("database error", slog.String("op", "filtered customers"), slog.String("query", query), slog.Any("error", err))
		return nil, shared.NewDataAccessError("customer table", err)
	}
	return rows, nil
}
