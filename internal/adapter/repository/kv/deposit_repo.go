package kv

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/usecase"
)

// DepositRepository implements usecase.DepositRepository.
type DepositRepository struct {
	store kvstore.Store
	idGen usecase.IDGenerator
}

// NewDepositRepository creates a new DepositRepository.
func NewDepositRepository(store kvstore.Store, idGen usecase.IDGenerator) *DepositRepository {
	return &DepositRepository{store: store, idGen: idGen}
}

// List returns all deposits.
func (r *DepositRepository) List(ctx context.Context) ([]*domain.Deposit, error) {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Deposit, len(deposits))
	for i := range deposits {
		result[i] = &deposits[i]
	}

	return result, nil
}

// ListByAccount returns the deposits attributed to an account.
func (r *DepositRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Deposit, error) {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return nil, err
	}

	var result []*domain.Deposit
	for i := range deposits {
		if deposits[i].AccountID == accountID {
			result = append(result, &deposits[i])
		}
	}

	return result, nil
}

// GetByID retrieves a deposit by ID.
func (r *DepositRepository) GetByID(ctx context.Context, id string) (*domain.Deposit, error) {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return nil, err
	}

	for i := range deposits {
		if deposits[i].ID == id {
			return &deposits[i], nil
		}
	}

	return nil, domain.ErrDepositNotFound
}

// Add appends a new deposit, assigning an ID when absent and stamping
// createdAt, then persists the full collection.
func (r *DepositRepository) Add(ctx context.Context, deposit *domain.Deposit) error {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return err
	}

	if deposit.ID == "" {
		deposit.ID = r.idGen.Generate()
	}
	deposit.CreatedAt = time.Now().UTC()

	deposits = append(deposits, *deposit)

	return saveList(ctx, r.store, KeyDeposits, deposits)
}

// Update replaces the stored deposit, preserving its ID, accountId and
// createdAt and stamping updatedAt.
func (r *DepositRepository) Update(ctx context.Context, id string, updated *domain.Deposit) error {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return err
	}

	for i := range deposits {
		if deposits[i].ID != id {
			continue
		}

		updated.ID = id
		updated.AccountID = deposits[i].AccountID
		updated.CreatedAt = deposits[i].CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		deposits[i] = *updated

		return saveList(ctx, r.store, KeyDeposits, deposits)
	}

	return domain.ErrDepositNotFound
}

// Remove filters the deposit out of the collection.
func (r *DepositRepository) Remove(ctx context.Context, id string) error {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return err
	}

	filtered := deposits[:0:0]
	for i := range deposits {
		if deposits[i].ID != id {
			filtered = append(filtered, deposits[i])
		}
	}

	if len(filtered) == len(deposits) {
		return domain.ErrDepositNotFound
	}

	return saveList(ctx, r.store, KeyDeposits, filtered)
}

// RemoveByAccount drops every deposit attributed to an account.
func (r *DepositRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return err
	}

	filtered := deposits[:0:0]
	for i := range deposits {
		if deposits[i].AccountID != accountID {
			filtered = append(filtered, deposits[i])
		}
	}

	return saveList(ctx, r.store, KeyDeposits, filtered)
}

// TotalByAccount sums the amounts of an account's deposits.
func (r *DepositRepository) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	deposits, err := loadList[domain.Deposit](ctx, r.store, KeyDeposits)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range deposits {
		if deposits[i].AccountID == accountID {
			total = total.Add(deposits[i].Amount)
		}
	}

	return total, nil
}
