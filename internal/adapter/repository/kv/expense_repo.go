package kv

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/usecase"
)

// ExpenseRepository implements usecase.ExpenseRepository.
type ExpenseRepository struct {
	store kvstore.Store
	idGen usecase.IDGenerator
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(store kvstore.Store, idGen usecase.IDGenerator) *ExpenseRepository {
	return &ExpenseRepository{store: store, idGen: idGen}
}

// List returns all expenses.
func (r *ExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Expense, len(expenses))
	for i := range expenses {
		result[i] = &expenses[i]
	}

	return result, nil
}

// ListByAccount returns the expenses attributed to an account.
func (r *ExpenseRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Expense, error) {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return nil, err
	}

	var result []*domain.Expense
	for i := range expenses {
		if expenses[i].AccountID == accountID {
			result = append(result, &expenses[i])
		}
	}

	return result, nil
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return nil, err
	}

	for i := range expenses {
		if expenses[i].ID == id {
			return &expenses[i], nil
		}
	}

	return nil, domain.ErrExpenseNotFound
}

// Add appends a new expense, assigning an ID when absent and stamping
// createdAt, then persists the full collection.
func (r *ExpenseRepository) Add(ctx context.Context, expense *domain.Expense) error {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return err
	}

	if expense.ID == "" {
		expense.ID = r.idGen.Generate()
	}
	expense.CreatedAt = time.Now().UTC()

	expenses = append(expenses, *expense)

	return saveList(ctx, r.store, KeyExpenses, expenses)
}

// Update replaces the stored expense, preserving its ID, accountId and
// createdAt and stamping updatedAt.
func (r *ExpenseRepository) Update(ctx context.Context, id string, updated *domain.Expense) error {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return err
	}

	for i := range expenses {
		if expenses[i].ID != id {
			continue
		}

		updated.ID = id
		updated.AccountID = expenses[i].AccountID
		updated.CreatedAt = expenses[i].CreatedAt
		updated.UpdatedAt = time.Now().UTC()
		expenses[i] = *updated

		return saveList(ctx, r.store, KeyExpenses, expenses)
	}

	return domain.ErrExpenseNotFound
}

// Remove filters the expense out of the collection.
func (r *ExpenseRepository) Remove(ctx context.Context, id string) error {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return err
	}

	filtered := expenses[:0:0]
	for i := range expenses {
		if expenses[i].ID != id {
			filtered = append(filtered, expenses[i])
		}
	}

	if len(filtered) == len(expenses) {
		return domain.ErrExpenseNotFound
	}

	return saveList(ctx, r.store, KeyExpenses, filtered)
}

// RemoveByAccount drops every expense attributed to an account. Removing
// zero rows is fine; cascade deletion calls this unconditionally.
func (r *ExpenseRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return err
	}

	filtered := expenses[:0:0]
	for i := range expenses {
		if expenses[i].AccountID != accountID {
			filtered = append(filtered, expenses[i])
		}
	}

	return saveList(ctx, r.store, KeyExpenses, filtered)
}

// TotalByAccount sums the amounts of an account's expenses.
func (r *ExpenseRepository) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	expenses, err := loadList[domain.Expense](ctx, r.store, KeyExpenses)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range expenses {
		if expenses[i].AccountID == accountID {
			total = total.Add(expenses[i].Amount)
		}
	}

	return total, nil
}
