package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler    *handler.AccountHandler
	ExpenseHandler    *handler.ExpenseHandler
	DepositHandler    *handler.DepositHandler
	AdjustmentHandler *handler.AdjustmentHandler
	SettingsHandler   *handler.SettingsHandler
	LedgerHandler     *handler.LedgerHandler
	HealthHandler     *handler.HealthHandler
	Logger            zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/total", cfg.AccountHandler.TotalBalance)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Put("/{id}", cfg.AccountHandler.Update)
			r.Delete("/{id}", cfg.AccountHandler.Delete)
			r.Post("/{id}/adjust", cfg.AccountHandler.Adjust)
			r.Get("/{id}/summary", cfg.AccountHandler.Summary)
			r.Get("/{id}/expenses", cfg.ExpenseHandler.ListByAccount)
			r.Get("/{id}/deposits", cfg.DepositHandler.ListByAccount)
			r.Get("/{id}/adjustments", cfg.AdjustmentHandler.ListByAccount)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", cfg.ExpenseHandler.Create)
			r.Get("/", cfg.ExpenseHandler.List)
			r.Get("/{id}", cfg.ExpenseHandler.Get)
			r.Put("/{id}", cfg.ExpenseHandler.Update)
			r.Delete("/{id}", cfg.ExpenseHandler.Delete)
			r.Get("/{id}/receipt", cfg.ExpenseHandler.DownloadReceipt)
		})

		r.Route("/deposits", func(r chi.Router) {
			r.Post("/", cfg.DepositHandler.Create)
			r.Get("/", cfg.DepositHandler.List)
			r.Get("/{id}", cfg.DepositHandler.Get)
			r.Put("/{id}", cfg.DepositHandler.Update)
			r.Delete("/{id}", cfg.DepositHandler.Delete)
		})

		r.Get("/adjustments", cfg.AdjustmentHandler.List)

		r.Get("/settings", cfg.SettingsHandler.Get)
		r.Put("/settings", cfg.SettingsHandler.Update)

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/consistency", cfg.LedgerHandler.Consistency)
			r.Get("/consistency/{id}", cfg.LedgerHandler.ConsistencyAccount)
			r.Post("/repair/{id}", cfg.LedgerHandler.Repair)
		})
	})

	return r
}
