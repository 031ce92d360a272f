package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/acme-dashboard/acme-dashboard/internal/app"
	"github.com/acme-dashboard/acme-dashboard/internal/customers"
	"github.com/acme-dashboard/acme-dashboard/internal/dashboard"
	"github.com/acme-dashboard/acme-dashboard/internal/invoices"
	"github.com/acme-dashboard/acme-dashboard/internal/observability"
	"github.com/acme-dashboard/acme-dashboard/internal/platform/db"
	"github.com/acme-dashboard/acme-dashboard/internal/revenue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

	revenueRepo := revenue.NewRepository(dbpool)
	revenueService := revenue.NewService(logger, revenueRepo)
	revenueHandler := revenue.NewHandler(logger, revenueService)

	invoicesRepo := invoices.NewRepository(dbpool)
	invoicesService := invoices.NewService(logger, invoicesRepo)
	invoicesHandler := invoices.NewHandler(logger, invoicesService)

	customersRepo := customers.NewRepository(dbpool)
	customersService := customers.NewService(logger, customersRepo)
	customersHandler := customers.NewHandler(logger, customersService)

	dashboardRepo := dashboard.NewRepository(dbpool)
	dashboardService := dashboard.NewService(logger, dashboardRepo)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		Metrics:          metrics,
		RevenueHandler:   revenueHandler,
		InvoicesHandler:  invoicesHandler,
		CustomersHandler: customersHandler,
		DashboardHandler: dashboardHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
