package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	VerifyAccount(ctx context.Context, id string) (*usecase.ConsistencyResult, error)
	VerifyAll(ctx context.Context) ([]*usecase.ConsistencyResult, error)
	RepairAccount(ctx context.Context, id string) (*usecase.ConsistencyResult, error)
}

// LedgerHandler handles the on-demand consistency and repair endpoints.
type LedgerHandler struct {
	ledgerUC LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// Consistency reports every account's recorded balance against its history.
func (h *LedgerHandler) Consistency(w http.ResponseWriter, r *http.Request) {
	results, err := h.ledgerUC.VerifyAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to verify ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistenciesFromUseCase(results))
}

// ConsistencyAccount reports one account's consistency.
func (h *LedgerHandler) ConsistencyAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.ledgerUC.VerifyAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to verify account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromUseCase(result))
}

// Repair rewrites one account's running balance from its history.
func (h *LedgerHandler) Repair(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.ledgerUC.RepairAccount(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to repair account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyFromUseCase(result))
}
