package domain

import "errors"

var (
	// Not-found errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrDepositNotFound    = errors.New("deposit not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")

	// Validation errors
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidBankName      = errors.New("invalid bank name")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrMissingReason        = errors.New("adjustment reason is required")
	ErrMissingReceipt       = errors.New("receipt replacement requires a file")

	// ErrStore wraps failures of the underlying key-value store.
	ErrStore = errors.New("store operation failed")

	// ErrOutOfBalance reports an account whose running balance disagrees
	// with its transaction history.
	ErrOutOfBalance = errors.New("account balance inconsistent with history")
)
