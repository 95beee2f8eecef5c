package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
)

// AdjustmentService defines the behavior needed by AdjustmentHandler.
type AdjustmentService interface {
	ListAdjustments(ctx context.Context) ([]*domain.Adjustment, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Adjustment, error)
}

// AdjustmentHandler handles adjustment-related HTTP requests. Adjustments
// are created through the account balance override endpoint; here they are
// read-only audit records.
type AdjustmentHandler struct {
	adjustmentUC AdjustmentService
}

// NewAdjustmentHandler creates a new AdjustmentHandler.
func NewAdjustmentHandler(adjustmentUC AdjustmentService) *AdjustmentHandler {
	return &AdjustmentHandler{adjustmentUC: adjustmentUC}
}

// List lists all adjustments.
func (h *AdjustmentHandler) List(w http.ResponseWriter, r *http.Request) {
	adjustments, err := h.adjustmentUC.ListAdjustments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list adjustments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdjustmentsFromDomain(adjustments))
}

// ListByAccount lists the adjustments recorded against an account.
func (h *AdjustmentHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	adjustments, err := h.adjustmentUC.ListByAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list adjustments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AdjustmentsFromDomain(adjustments))
}
