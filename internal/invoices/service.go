package invoices

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

const (
	latestCount  = 5
	itemsPerPage = 6
)

// Service runs the invoice read operations and shapes rows for the
// dashboard. Every store failure is logged here and surfaced as a
// DataAccessError naming the operation.
type Service struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

// Latest returns the five most recent invoices joined with their
// customers, newest first.
func (s *Service) Latest(ctx context.Context) ([]LatestInvoice, error) {
	rows, err := s.repo.Latest(ctx, latestCount)
	if err != nil {
		s.logger.Error("database error", slog.String("op", "latest invoices"), slog.Any("error", err))
		return nil, shared.NewDataAccessError("the latest invoices", err)
	}
	return rows, nil
}

// Filtered returns one six-row page of the invoices table matching the
// search query, newest first. Pages start at 1.
func (s *Service) Filtered(ctx context.Context, query string, page int) ([]InvoiceRow, error) {
	p := shared.NewPagination(page, itemsPerPage, 0)
	rows, err := s.repo.Filtered(ctx, query, p.PerPage, p.Offset())
	if err != nil {
		s.logger.Error("database error", slog.String("op", "filtered invoices"), slog.String("query", query), slog.Any("error", err))
		return nil, shared.NewDataAccessError("invoices", err)
	}
	return rows, nil
}

// Pages returns how many six-row pages the filtered table spans.
func (s *Service) Pages(ctx context.Context, query string) (int, error) {
	total, err := s.repo.CountFiltered(ctx, query)
	if err != nil {
		s.logger.Error("database error", slog.String("op", "count invoices"), slog.String("query", query), slog.Any("error", err))
		return 0, shared.NewDataAccessError("total number of invoices", err)
	}
	return shared.NewPagination(1, itemsPerPage, total).TotalPages, nil
}

// ByID looks up a single invoice and projects it into the edit-form
// shape, converting stored cents to major units. A missing id is not a
// failure: the result is (nil, nil) and callers must check for it.
func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*InvoiceForm, error) {
	inv, err := s.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		s.logger.Error("database error", slog.String("op", "invoice by id"), slog.String("id", id.String()), slog.Any("error", err))
		return nil, shared.NewDataAccessError("invoice", err)
	}
	return &InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     float64(inv.Amount) / 100,
		Status:     inv.Status,
	}, nil
}
