package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// AdjustmentUseCase exposes the adjustment audit trail. Records are only
// ever created through AccountUseCase.AdjustBalance.
type AdjustmentUseCase struct {
	adjustmentRepo AdjustmentRepository
}

// NewAdjustmentUseCase creates a new AdjustmentUseCase.
func NewAdjustmentUseCase(adjustmentRepo AdjustmentRepository) *AdjustmentUseCase {
	return &AdjustmentUseCase{adjustmentRepo: adjustmentRepo}
}

// ListAdjustments lists all adjustments.
func (uc *AdjustmentUseCase) ListAdjustments(ctx context.Context) ([]*domain.Adjustment, error) {
	return uc.adjustmentRepo.List(ctx)
}

// ListByAccount lists the adjustments recorded against an account.
func (uc *AdjustmentUseCase) ListByAccount(ctx context.Context, accountID string) ([]*domain.Adjustment, error) {
	return uc.adjustmentRepo.ListByAccount(ctx, accountID)
}
