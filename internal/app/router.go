package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/acme-dashboard/acme-dashboard/internal/customers"
	"github.com/acme-dashboard/acme-dashboard/internal/dashboard"
	"github.com/acme-dashboard/acme-dashboard/internal/invoices"
	"github.com/acme-dashboard/acme-dashboard/internal/observability"
	"github.com/acme-dashboard/acme-dashboard/internal/revenue"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Metrics          *observability.Metrics
	RevenueHandler   *revenue.Handler
	InvoicesHandler  *invoices.Handler
	CustomersHandler *customers.Handler
	DashboardHandler *dashboard.Handler
}

// NewRouter constructs the chi.Router serving the read-only API.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		params.RevenueHandler.MountRoutes(r)
		params.InvoicesHandler.MountRoutes(r)
		params.CustomersHandler.MountRoutes(r)
		params.DashboardHandler.MountRoutes(r)
	})

	return r
}
