package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// AccountUseCase handles account business logic, including the manual
// balance override with its audit trail and the account cascade deletion.
type AccountUseCase struct {
	accountRepo    AccountRepository
	expenseRepo    ExpenseRepository
	depositRepo    DepositRepository
	adjustmentRepo AdjustmentRepository
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(
	accountRepo AccountRepository,
	expenseRepo ExpenseRepository,
	depositRepo DepositRepository,
	adjustmentRepo AdjustmentRepository,
) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:    accountRepo,
		expenseRepo:    expenseRepo,
		depositRepo:    depositRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	BankName       string
	AccountNumber  string
	Balance        decimal.Decimal
	OverdraftLimit decimal.Decimal
}

// CreateAccount creates a new account. The supplied balance becomes the
// opening balance that all later reconciliation is anchored to.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateBankName(input.BankName); err != nil {
		return nil, err
	}

	number := domain.NormalizeAccountNumber(input.AccountNumber)
	if err := domain.ValidateAccountNumber(number); err != nil {
		return nil, err
	}

	account := &domain.Account{
		BankName:       input.BankName,
		AccountNumber:  number,
		Balance:        input.Balance,
		OpeningBalance: input.Balance,
		OverdraftLimit: input.OverdraftLimit,
	}

	if err := uc.accountRepo.Add(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists all accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// UpdateAccountInput represents input for updating account details. Nil
// fields are left unchanged. The running balance is not editable here;
// it only moves through transactions and adjustments.
type UpdateAccountInput struct {
	BankName       *string
	AccountNumber  *string
	OverdraftLimit *decimal.Decimal
}

// UpdateAccount updates an account's details.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, id string, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.BankName != nil {
		if err := domain.ValidateBankName(*input.BankName); err != nil {
			return nil, err
		}
		account.BankName = *input.BankName
	}

	if input.AccountNumber != nil {
		number := domain.NormalizeAccountNumber(*input.AccountNumber)
		if err := domain.ValidateAccountNumber(number); err != nil {
			return nil, err
		}
		account.AccountNumber = number
	}

	if input.OverdraftLimit != nil {
		account.OverdraftLimit = *input.OverdraftLimit
	}

	if err := uc.accountRepo.Update(ctx, id, account); err != nil {
		return nil, err
	}

	return account, nil
}

// AdjustBalanceInput represents input for a manual balance override.
type AdjustBalanceInput struct {
	NewBalance decimal.Decimal
	Reason     string
	Note       string
}

// AdjustBalance overrides an account's balance to the given value, recording
// the adjustment audit record before the balance itself is touched. A failed
// balance write after a recorded adjustment is not rolled back; the record
// then documents an override that never landed.
func (uc *AccountUseCase) AdjustBalance(ctx context.Context, id string, input AdjustBalanceInput) (*domain.Adjustment, error) {
	if err := domain.ValidateReason(input.Reason); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	adjustment := domain.NewAdjustment(id, account.Balance, input.NewBalance, input.Reason, input.Note)
	adjustment.Date = time.Now().UTC().Format(time.RFC3339)

	if err := uc.adjustmentRepo.Add(ctx, adjustment); err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, id, input.NewBalance); err != nil {
		return nil, fmt.Errorf("adjustment recorded but balance not updated: %w", err)
	}

	return adjustment, nil
}

// TotalBalance sums the running balances of all accounts.
func (uc *AccountUseCase) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}

	return total, nil
}

// AccountSummary aggregates the figures the original panels display for one
// account.
type AccountSummary struct {
	Account          *domain.Account
	AvailableBalance decimal.Decimal
	TotalExpenses    decimal.Decimal
	TotalDeposits    decimal.Decimal
}

// Summary returns the per-account aggregate view.
func (uc *AccountUseCase) Summary(ctx context.Context, id string) (*AccountSummary, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	totalExpenses, err := uc.expenseRepo.TotalByAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	totalDeposits, err := uc.depositRepo.TotalByAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AccountSummary{
		Account:          account,
		AvailableBalance: account.AvailableBalance(),
		TotalExpenses:    totalExpenses,
		TotalDeposits:    totalDeposits,
	}, nil
}

// DeleteAccount cascade-deletes an account: every expense, deposit and
// adjustment attributed to it is removed, then the account itself. No
// balance reconciliation happens here; the balance is discarded with the
// account. Steps are not rolled back on a later failure — errors from all
// steps are joined and surfaced.
func (uc *AccountUseCase) DeleteAccount(ctx context.Context, id string) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return errors.Join(
		uc.expenseRepo.RemoveByAccount(ctx, id),
		uc.depositRepo.RemoveByAccount(ctx, id),
		uc.adjustmentRepo.RemoveByAccount(ctx, id),
		uc.accountRepo.Remove(ctx, id),
	)
}
