package kv

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	store kvstore.Store
	idGen usecase.IDGenerator
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store kvstore.Store, idGen usecase.IDGenerator) *AccountRepository {
	return &AccountRepository{store: store, idGen: idGen}
}

// List returns all accounts.
func (r *AccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Account, len(accounts))
	for i := range accounts {
		result[i] = &accounts[i]
	}

	return result, nil
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}

	return nil, domain.ErrAccountNotFound
}

// Add appends a new account, assigning an ID when absent and stamping
// createdAt, then persists the full collection.
func (r *AccountRepository) Add(ctx context.Context, account *domain.Account) error {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return err
	}

	if account.ID == "" {
		account.ID = r.idGen.Generate()
	}
	account.CreatedAt = time.Now().UTC()

	accounts = append(accounts, *account)

	return saveList(ctx, r.store, KeyAccounts, accounts)
}

// Update replaces the stored account, preserving its ID and createdAt and
// stamping updatedAt.
func (r *AccountRepository) Update(ctx context.Context, id string, updated *domain.Account) error {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}

		updated.ID = id
		updated.CreatedAt = accounts[i].CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		accounts[i] = *updated

		return saveList(ctx, r.store, KeyAccounts, accounts)
	}

	return domain.ErrAccountNotFound
}

// UpdateBalance sets the running balance of an account.
func (r *AccountRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return err
	}

	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}

		accounts[i].Balance = balance
		accounts[i].UpdatedAt = time.Now().UTC()

		return saveList(ctx, r.store, KeyAccounts, accounts)
	}

	return domain.ErrAccountNotFound
}

// Remove filters the account out of the collection. An unchanged length
// means the account was not found.
func (r *AccountRepository) Remove(ctx context.Context, id string) error {
	accounts, err := loadList[domain.Account](ctx, r.store, KeyAccounts)
	if err != nil {
		return err
	}

	filtered := accounts[:0:0]
	for i := range accounts {
		if accounts[i].ID != id {
			filtered = append(filtered, accounts[i])
		}
	}

	if len(filtered) == len(accounts) {
		return domain.ErrAccountNotFound
	}

	return saveList(ctx, r.store, KeyAccounts, filtered)
}
