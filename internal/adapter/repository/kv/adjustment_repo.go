package kv

import (
	"context"
	"time"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/usecase"
)

// AdjustmentRepository implements usecase.AdjustmentRepository. Adjustments
// are append-only: there is no update and no single-record removal, only the
// account-cascade RemoveByAccount.
type AdjustmentRepository struct {
	store kvstore.Store
	idGen usecase.IDGenerator
}

// NewAdjustmentRepository creates a new AdjustmentRepository.
func NewAdjustmentRepository(store kvstore.Store, idGen usecase.IDGenerator) *AdjustmentRepository {
	return &AdjustmentRepository{store: store, idGen: idGen}
}

// List returns all adjustments.
func (r *AdjustmentRepository) List(ctx context.Context) ([]*domain.Adjustment, error) {
	adjustments, err := loadList[domain.Adjustment](ctx, r.store, KeyAdjustments)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Adjustment, len(adjustments))
	for i := range adjustments {
		result[i] = &adjustments[i]
	}

	return result, nil
}

// ListByAccount returns the adjustments recorded against an account.
func (r *AdjustmentRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Adjustment, error) {
	adjustments, err := loadList[domain.Adjustment](ctx, r.store, KeyAdjustments)
	if err != nil {
		return nil, err
	}

	var result []*domain.Adjustment
	for i := range adjustments {
		if adjustments[i].AccountID == accountID {
			result = append(result, &adjustments[i])
		}
	}

	return result, nil
}

// Add appends a new adjustment, assigning an ID when absent and stamping
// createdAt, then persists the full collection.
func (r *AdjustmentRepository) Add(ctx context.Context, adjustment *domain.Adjustment) error {
	adjustments, err := loadList[domain.Adjustment](ctx, r.store, KeyAdjustments)
	if err != nil {
		return err
	}

	if adjustment.ID == "" {
		adjustment.ID = r.idGen.Generate()
	}
	adjustment.CreatedAt = time.Now().UTC()

	adjustments = append(adjustments, *adjustment)

	return saveList(ctx, r.store, KeyAdjustments, adjustments)
}

// RemoveByAccount drops every adjustment recorded against an account.
func (r *AdjustmentRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	adjustments, err := loadList[domain.Adjustment](ctx, r.store, KeyAdjustments)
	if err != nil {
		return err
	}

	filtered := adjustments[:0:0]
	for i := range adjustments {
		if adjustments[i].AccountID != accountID {
			filtered = append(filtered, adjustments[i])
		}
	}

	return saveList(ctx, r.store, KeyAdjustments, filtered)
}
