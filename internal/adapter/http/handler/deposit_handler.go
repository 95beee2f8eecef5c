package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// DepositService defines the behavior needed by DepositHandler.
type DepositService interface {
	AddDeposit(ctx context.Context, input usecase.AddDepositInput) (*domain.Deposit, error)
	GetDeposit(ctx context.Context, id string) (*domain.Deposit, error)
	ListDeposits(ctx context.Context) ([]*domain.Deposit, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Deposit, error)
	UpdateDeposit(ctx context.Context, id string, input usecase.UpdateDepositInput) (*domain.Deposit, error)
	RemoveDeposit(ctx context.Context, id string, restoreBalance bool) error
}

// DepositHandler handles deposit-related HTTP requests.
type DepositHandler struct {
	depositUC DepositService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(depositUC DepositService) *DepositHandler {
	return &DepositHandler{depositUC: depositUC}
}

// Create records a deposit.
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	deposit, err := h.depositUC.AddDeposit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to record deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DepositFromDomain(deposit))
}

// Get retrieves a deposit by ID.
func (h *DepositHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deposit, err := h.depositUC.GetDeposit(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositFromDomain(deposit))
}

// List lists all deposits.
func (h *DepositHandler) List(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositUC.ListDeposits(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deposits", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositsFromDomain(deposits))
}

// ListByAccount lists the deposits attributed to an account.
func (h *DepositHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	deposits, err := h.depositUC.ListByAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list deposits", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositsFromDomain(deposits))
}

// Update edits a deposit.
func (h *DepositHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	deposit, err := h.depositUC.UpdateDeposit(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update deposit", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DepositFromDomain(deposit))
}

// Delete removes a deposit. restore_balance controls whether its effect on
// the account balance is reversed; it defaults to true.
func (h *DepositHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	restore := parseBoolQuery(r, "restore_balance", true)

	if err := h.depositUC.RemoveDeposit(r.Context(), id, restore); err != nil {
		writeError(w, mapDomainError(err), "failed to delete deposit", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
