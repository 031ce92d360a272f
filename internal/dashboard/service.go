package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/acme-dashboard/acme-dashboard/internal/invoices"
	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

type Service struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(logger *slog.Logger, repo Repository) *Service {
	return &Service{logger: logger, repo: repo}
}

// CardMetrics runs the four card aggregates concurrently. The queries
// are independent reads, so the first failure cancels the rest and the
// whole operation fails; no partial result is returned.
func (s *Service) CardMetrics(ctx context.Context) (CardMetrics, error) {
	var (
		invoiceCount  int64
		customerCount int64
		paidSum       int64
		pendingSum    int64
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.repo.CountInvoices(ctx)
		if err != nil {
			return err
		}
		invoiceCount = count
		return nil
	})

	g.Go(func() error {
		count, err := s.repo.CountCustomers(ctx)
		if err != nil {
			return err
		}
		customerCount = count
		return nil
	})

	g.Go(func() error {
		sum, err := s.repo.SumInvoicesByStatus(ctx, invoices.StatusPaid)
		if err != nil {
			return err
		}
		paidSum = sum
		return nil
	})

	g.Go(func() error {
		sum, err := s.repo.SumInvoicesByStatus(ctx, invoices.StatusPending)
		if err != nil {
			return err
		}
		pendingSum = sum
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("database error", slog.String("op", "card metrics"), slog.Any("error", err))
		return CardMetrics{}, shared.NewDataAccessError("card data", err)
	}

	return CardMetrics{
		NumberOfCustomers:    customerCount,
		NumberOfInvoices:     invoiceCount,
		TotalPaidInvoices:    shared.FormatCents(paidSum),
		TotalPendingInvoices: shared.FormatCents(pendingSum),
	}, nil
}
