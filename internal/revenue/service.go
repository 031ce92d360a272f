package revenue

import (
	"context"
	"log/slog"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

// Service exposes the revenue chart data. Rows pass through unshaped;
// the chart scales them client-side.
type Service struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Revenue, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("database error", slog.String("op", "list revenue"), slog.Any("error", err))
		return nil, shared.NewDataAccessError("revenue data", err)
	}
	return rows, nil
}
