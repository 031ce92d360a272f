package revenue

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme-dashboard/acme-dashboard/internal/shared"
)

type mockRepository struct {
	rows    []Revenue
	listErr error
}

func (m *mockRepository) List(ctx context.Context) ([]Revenue, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.rows, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListPassesRowsThrough(t *testing.T) {
	repo := &mockRepository{rows: []Revenue{
		{Month: "Jan", Revenue: 2000},
		{Month: "Feb", Revenue: 1800},
	}}
	svc := NewService(testLogger(), repo)

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, repo.rows, rows)
}

func TestListWrapsStoreFailure(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("connection reset")}
	svc := NewService(testLogger(), repo)

	_, err := svc.List(context.Background())
	require.Error(t, err)

	var dae *shared.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "failed to fetch revenue data", err.Error())
}
