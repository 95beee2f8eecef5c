package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// ReceiptAction selects what an expense update does with the attachment.
// Exactly one applies per update; nothing is ever inferred from the payload.
type ReceiptAction string

const (
	ReceiptKeep    ReceiptAction = "keep"
	ReceiptReplace ReceiptAction = "replace"
	ReceiptRemove  ReceiptAction = "remove"
)

// ExpenseUseCase handles expense business logic, including the balance
// reconciliation deltas and the attachment lifecycle.
type ExpenseUseCase struct {
	expenseRepo ExpenseRepository
	accountRepo AccountRepository
	encoder     ReceiptEncoder
	logger      zerolog.Logger
}

// NewExpenseUseCase creates a new ExpenseUseCase.
func NewExpenseUseCase(expenseRepo ExpenseRepository, accountRepo AccountRepository, encoder ReceiptEncoder, logger zerolog.Logger) *ExpenseUseCase {
	return &ExpenseUseCase{
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
		encoder:     encoder,
		logger:      logger,
	}
}

// AddExpenseInput represents input for recording an expense.
type AddExpenseInput struct {
	AccountID   string
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        string
	Receipt     *RawFile
}

// AddExpense records an expense and applies its balance-decreasing effect.
// When a receipt is supplied the encode must complete first; until then
// nothing is persisted, so a failed encode leaves no trace. The balance
// step is skipped when the account no longer exists.
func (uc *ExpenseUseCase) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		AccountID:   input.AccountID,
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
	}

	if input.Receipt != nil {
		receipt, err := uc.encoder.Encode(ctx, *input.Receipt).Wait(ctx)
		if err != nil {
			return nil, err
		}
		expense.AttachReceipt(receipt)
	}

	if err := uc.applyDelta(ctx, input.AccountID, input.Amount.Neg()); err != nil {
		return nil, err
	}

	if err := uc.expenseRepo.Add(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpenseInput represents input for editing an expense. UpdateBalance
// controls whether the old effect is reversed and the new one applied;
// cascade paths pass false because the account is being discarded anyway.
type UpdateExpenseInput struct {
	Category      string
	Description   string
	Amount        decimal.Decimal
	Date          string
	UpdateBalance bool
	ReceiptAction ReceiptAction
	Receipt       *RawFile
}

// UpdateExpense edits an expense. The balance moves by the difference
// between the old and new amounts: reversal of the old effect plus
// application of the new one, never a recomputation from history.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, input UpdateExpenseInput) (*domain.Expense, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	old, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *old
	updated.Category = input.Category
	updated.Description = input.Description
	updated.Amount = input.Amount
	updated.Date = input.Date

	switch input.ReceiptAction {
	case ReceiptReplace:
		if input.Receipt == nil {
			return nil, domain.ErrMissingReceipt
		}
		receipt, err := uc.encoder.Encode(ctx, *input.Receipt).Wait(ctx)
		if err != nil {
			return nil, err
		}
		updated.AttachReceipt(receipt)
	case ReceiptRemove:
		updated.StripReceipt()
	case ReceiptKeep, "":
		// existing attachment fields carry over untouched
	default:
		return nil, errors.New("unknown receipt action")
	}

	if input.UpdateBalance {
		if err := uc.applyDelta(ctx, old.AccountID, old.Amount.Sub(input.Amount)); err != nil {
			return nil, err
		}
	}

	if err := uc.expenseRepo.Update(ctx, id, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// RemoveExpense deletes an expense, reversing its effect when restoration
// is requested.
func (uc *ExpenseUseCase) RemoveExpense(ctx context.Context, id string, restoreBalance bool) error {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if restoreBalance {
		if err := uc.applyDelta(ctx, expense.AccountID, expense.Amount); err != nil {
			return err
		}
	}

	return uc.expenseRepo.Remove(ctx, id)
}

// GetExpense retrieves an expense by ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return uc.expenseRepo.GetByID(ctx, id)
}

// ListExpenses lists all expenses.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	return uc.expenseRepo.List(ctx)
}

// ListByAccount lists the expenses attributed to an account.
func (uc *ExpenseUseCase) ListByAccount(ctx context.Context, accountID string) ([]*domain.Expense, error) {
	return uc.expenseRepo.ListByAccount(ctx, accountID)
}

// TotalByAccount sums an account's expenses.
func (uc *ExpenseUseCase) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return uc.expenseRepo.TotalByAccount(ctx, accountID)
}

// applyDelta shifts the account balance by the given signed amount. A
// missing account is a benign no-op: the transaction mutation proceeds and
// the skipped step is only logged.
func (uc *ExpenseUseCase) applyDelta(ctx context.Context, accountID string, delta decimal.Decimal) error {
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
