package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	List(ctx context.Context) ([]*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	Add(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, id string, updated *domain.Account) error
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	Remove(ctx context.Context, id string) error
}

// ExpenseRepository defines data access for expenses.
type ExpenseRepository interface {
	List(ctx context.Context) ([]*domain.Expense, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Expense, error)
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Add(ctx context.Context, expense *domain.Expense) error
	Update(ctx context.Context, id string, updated *domain.Expense) error
	Remove(ctx context.Context, id string) error
	RemoveByAccount(ctx context.Context, accountID string) error
	TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// DepositRepository defines data access for deposits.
type DepositRepository interface {
	List(ctx context.Context) ([]*domain.Deposit, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Deposit, error)
	GetByID(ctx context.Context, id string) (*domain.Deposit, error)
	Add(ctx context.Context, deposit *domain.Deposit) error
	Update(ctx context.Context, id string, updated *domain.Deposit) error
	Remove(ctx context.Context, id string) error
	RemoveByAccount(ctx context.Context, accountID string) error
	TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}

// AdjustmentRepository defines data access for balance adjustments.
// The collection is append-only; records leave it only through an
// account cascade.
type AdjustmentRepository interface {
	List(ctx context.Context) ([]*domain.Adjustment, error)
	ListByAccount(ctx context.Context, accountID string) ([]*domain.Adjustment, error)
	Add(ctx context.Context, adjustment *domain.Adjustment) error
	RemoveByAccount(ctx context.Context, accountID string) error
}

// SettingsRepository defines data access for the settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
