package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/repository/kv"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/infrastructure/receipt"
	"github.com/iho/fintrack/internal/usecase"
)

func newRouterConfig() RouterConfig {
	store := kvstore.NewMemoryStore()
	idGen := kv.NewULIDGenerator()
	logger := zerolog.Nop()

	accountRepo := kv.NewAccountRepository(store, idGen)
	expenseRepo := kv.NewExpenseRepository(store, idGen)
	depositRepo := kv.NewDepositRepository(store, idGen)
	adjustmentRepo := kv.NewAdjustmentRepository(store, idGen)
	settingsRepo := kv.NewSettingsRepository(store)

	accountUC := usecase.NewAccountUseCase(accountRepo, expenseRepo, depositRepo, adjustmentRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, accountRepo, receipt.NewEncoder(), logger)
	depositUC := usecase.NewDepositUseCase(depositRepo, accountRepo, logger)
	adjustmentUC := usecase.NewAdjustmentUseCase(adjustmentRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	ledgerUC := usecase.NewReconciliationUseCase(accountRepo, expenseRepo, depositRepo, adjustmentRepo, nil)

	return RouterConfig{
		AccountHandler:    handler.NewAccountHandler(accountUC),
		ExpenseHandler:    handler.NewExpenseHandler(expenseUC),
		DepositHandler:    handler.NewDepositHandler(depositUC),
		AdjustmentHandler: handler.NewAdjustmentHandler(adjustmentUC),
		SettingsHandler:   handler.NewSettingsHandler(settingsUC),
		LedgerHandler:     handler.NewLedgerHandler(ledgerUC),
		HealthHandler:     handler.NewHealthHandler(store),
		Logger:            logger,
	}
}

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_ReadyEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /ready to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RegistersExpectedRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Router")
	}

	found := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		found[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	for _, want := range []string{
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/total",
		"POST /api/v1/accounts/{id}/adjust",
		"GET /api/v1/accounts/{id}/summary",
		"DELETE /api/v1/accounts/{id}",
		"POST /api/v1/expenses/",
		"GET /api/v1/expenses/{id}/receipt",
		"DELETE /api/v1/deposits/{id}",
		"GET /api/v1/adjustments",
		"PUT /api/v1/settings",
		"GET /api/v1/ledger/consistency",
		"POST /api/v1/ledger/repair/{id}",
	} {
		if !found[want] {
			t.Errorf("expected route %q registered", want)
		}
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
