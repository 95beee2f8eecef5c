package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// DepositUseCase handles deposit business logic. A deposit is the mirror
// image of an expense: same record shape, balance-increasing effect, no
// attachments.
type DepositUseCase struct {
	depositRepo DepositRepository
	accountRepo AccountRepository
	logger      zerolog.Logger
}

// NewDepositUseCase creates a new DepositUseCase.
func NewDepositUseCase(depositRepo DepositRepository, accountRepo AccountRepository, logger zerolog.Logger) *DepositUseCase {
	return &DepositUseCase{
		depositRepo: depositRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// AddDepositInput represents input for recording a deposit.
type AddDepositInput struct {
	AccountID   string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        string
}

// AddDeposit records a deposit and applies its balance-increasing effect.
func (uc *DepositUseCase) AddDeposit(ctx context.Context, input AddDepositInput) (*domain.Deposit, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	deposit := &domain.Deposit{
		AccountID:   input.AccountID,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
	}

	if err := uc.applyDelta(ctx, input.AccountID, input.Amount); err != nil {
		return nil, err
	}

	if err := uc.depositRepo.Add(ctx, deposit); err != nil {
		return nil, err
	}

	return deposit, nil
}

// UpdateDepositInput represents input for editing a deposit.
type UpdateDepositInput struct {
	Category      string
	Description   string
	Amount        decimal.Decimal
	Date          string
	UpdateBalance bool
}

// UpdateDeposit edits a deposit, moving the balance by the new amount minus
// the old one when requested.
func (uc *DepositUseCase) UpdateDeposit(ctx context.Context, id string, input UpdateDepositInput) (*domain.Deposit, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	old, err := uc.depositRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.Category = input.Category
	updated.Description = input.Description
	updated.Amount = input.Amount
	updated.Date = input.Date

	if input.UpdateBalance {
		if err := uc.applyDelta(ctx, old.AccountID, input.Amount.Sub(old.Amount)); err != nil {
			return nil, err
		}
	}

	if err := uc.depositRepo.Update(ctx, id, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// RemoveDeposit deletes a deposit, reversing its effect when restoration
// is requested.
func (uc *DepositUseCase) RemoveDeposit(ctx context.Context, id string, restoreBalance bool) error {
	deposit, err := uc.depositRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if restoreBalance {
		if err := uc.applyDelta(ctx, deposit.AccountID, deposit.Amount.Neg()); err != nil {
			return err
		}
	}

	return uc.depositRepo.Remove(ctx, id)
}

// GetDeposit retrieves a deposit by ID.
func (uc *DepositUseCase) GetDeposit(ctx context.Context, id string) (*domain.Deposit, error) {
	return uc.depositRepo.GetByID(ctx, id)
}

// ListDeposits lists all deposits.
func (uc *DepositUseCase) ListDeposits(ctx context.Context) ([]*domain.Deposit, error) {
	return uc.depositRepo.List(ctx)
}

// ListByAccount lists the deposits attributed to an account.
func (uc *DepositUseCase) ListByAccount(ctx context.Context, accountID string) ([]*domain.Deposit, error) {
	return uc.depositRepo.ListByAccount(ctx, accountID)
}

// TotalByAccount sums an account's deposits.
func (uc *DepositUseCase) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return uc.depositRepo.TotalByAccount(ctx, accountID)
}

func (uc *DepositUseCase) applyDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
	if accountID == "" {
		return nil
	}

	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			uc.logger.Warn().
				Str("account_id", accountID).
				Str("delta", delta.String()).
				Msg("balance step skipped: account no longer exists")
			return nil
		}

		return err
	}

	return uc.accountRepo.UpdateBalance(ctx, accountID, account.Balance.Add(delta))
}
