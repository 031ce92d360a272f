package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

type mockRepository struct {
	mu sync.Mutex

	invoiceCount  int64
	customerCount int64
	sums          map[string]int64

	invoiceCountErr error
	sumErr          error
	blockCustomers  bool

	askedStatuses      []string
	customersCancelled bool
}

func (m *mockRepository) CountInvoices(ctx context.Context) (int64, error) {
	if m.invoiceCountErr != nil {
		return 0, m.invoiceCountErr
	}
	return m.invoiceCount, nil
}

func (m *mockRepository) CountCustomers(ctx context.Context) (int64, error) {
	if m.blockCustomers {
		<-ctx.Done()
		m.mu.Lock()
		m.customersCancelled = true
		m.mu.Unlock()
		return 0, ctx.Err()
	}
	return m.customerCount, nil
}

func (m *mockRepository) SumInvoicesByStatus(ctx context.Context, status string) (int64, error) {
	m.mu.Lock()
	m.askedStatuses = append(m.askedStatuses, status)
	m.mu.Unlock()
	if m.sumErr != nil {
		return 0, m.sumErr
	}
	return m.sums[status], nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCardMetricsCombinesAggregates(t *testing.T) {
	repo := &mockRepository{
		invoiceCount:  15,
		customerCount: 6,
		sums: map[string]int64{
			"paid":    1000,
			"pending": 500,
		},
	}
	svc := NewService(testLogger(), repo)

	metrics, err := svc.CardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), metrics.NumberOfCustomers)
	assert.Equal(t, int64(15), metrics.NumberOfInvoices)
	assert.Equal(t, "$10.00", metrics.TotalPaidInvoices)
	assert.Equal(t, "$5.00", metrics.TotalPendingInvoices)
}

func TestCardMetricsSumsPerStatusOnly(t *testing.T) {
	// The mock only answers for the status it was asked about, so a
	// query mixing statuses would come back wrong here.
	repo := &mockRepository{sums: map[string]int64{"paid": 777, "pending": 333}}
	svc := NewService(testLogger(), repo)

	metrics, err := svc.CardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$7.77", metrics.TotalPaidInvoices)
	assert.Equal(t, "$3.33", metrics.TotalPendingInvoices)
	assert.ElementsMatch(t, []string{"paid", "pending"}, repo.askedStatuses)
}

func TestCardMetricsMissingSumsDefaultToZero(t *testing.T) {
	repo := &mockRepository{sums: map[string]int64{}}
	svc := NewService(testLogger(), repo)

	metrics, err := svc.CardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "$0.00", metrics.TotalPaidInvoices)
	assert.Equal(t, "$0.00", metrics.TotalPendingInvoices)
}

func TestCardMetricsFailsFast(t *testing.T) {
	repo := &mockRepository{
		sumErr:         errors.New("relation missing"),
		blockCustomers: true,
	}
	svc := NewService(testLogger(), repo)

	_, err := svc.CardMetrics(context.Background())
	var dae *shared.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "failed to fetch card data", err.Error())

	// The blocked sibling query observed cancellation once the first
	// failure hit.
	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.True(t, repo.customersCancelled)
}

func TestCardMetricsWrapsCountFailure(t *testing.T) {
	repo := &mockRepository{invoiceCountErr: errors.New("boom"), sums: map[string]int64{}}
	svc := NewService(testLogger(), repo)

	_, err := svc.CardMetrics(context.Background())
	var dae *shared.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "failed to fetch card data", err.Error())
}
