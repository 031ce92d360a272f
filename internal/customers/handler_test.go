package customers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) http.Handler {
	logger := testLogger()
	handler := NewHandler(logger, NewService(logger, repo))
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestFilteredEndpointFormatsTotals(t *testing.T) {
	repo := &mockRepository{summaries: []CustomerSummary{{
		ID:            uuid.New(),
		Name:          "Amy Burns",
		Email:         "amy@burns.com",
		TotalInvoices: 2,
		TotalPending:  500,
		TotalPaid:     1000,
	}}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/customers/filtered?query=amy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var views []CustomerSummaryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, int64(2), views[0].TotalInvoices)
	assert.Equal(t, "$5.00", views[0].TotalPending)
	assert.Equal(t, "$10.00", views[0].TotalPaid)
}

func TestListEndpointEmptyTableIsAnEmptyArray(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
