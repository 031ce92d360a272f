package invoices

import (
	"encoding/json"
	"errors"
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

func doRequest(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLatestEndpointFormatsAmounts(t *testing.T) {
	repo := &mockRepository{latest: []LatestInvoice{{
		ID:       uuid.New(),
		Amount:   20348,
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	}}}
	rec := doRequest(t, newTestRouter(repo), "/invoices/latest")

	require.Equal(t, http.StatusOK, rec.Code)

	var views []LatestInvoiceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "$203.48", views[0].Amount)
	assert.Equal(t, "Amy Burns", views[0].Name)
}

func TestListEndpointRejectsBadPage(t *testing.T) {
	router := newTestRouter(&mockRepository{})

	rec := doRequest(t, router, "/invoices?page=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, "/invoices?page=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEndpointDefaultsToFirstPage(t *testing.T) {
	repo := &mockRepository{}
	rec := doRequest(t, newTestRouter(repo), "/invoices?query=lee")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "lee", repo.gotQuery)
	assert.Equal(t, 0, repo.gotOffset)
}

func TestPagesEndpoint(t *testing.T) {
	repo := &mockRepository{count: 13}
	rec := doRequest(t, newTestRouter(repo), "/invoices/pages?query=")

	require.Equal(t, http.StatusOK, rec.Code)

	var view PagesView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 3, view.TotalPages)
}

func TestShowEndpointMissingInvoice(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mockRepository{}), "/invoices/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShowEndpointInvalidID(t *testing.T) {
	rec := doRequest(t, newTestRouter(&mockRepository{}), "/invoices/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStoreFailureSurfacesOperationMessage(t *testing.T) {
	repo := &mockRepository{countErr: errors.New("socket closed")}
	rec := doRequest(t, newTestRouter(repo), "/invoices/pages")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var problem struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "failed to fetch total number of invoices", problem.Detail)
}
