package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	OverdraftLimit decimal.Decimal `json:"overdraft_limit"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		BankName:       r.BankName,
		AccountNumber:  r.AccountNumber,
		Balance:        r.Balance,
		OverdraftLimit: r.OverdraftLimit,
	}
}

// UpdateAccountRequest represents a request to update account details.
// Absent fields are left unchanged.
type UpdateAccountRequest struct {
	BankName       *string          `json:"bank_name,omitempty"`
	AccountNumber  *string          `json:"account_number,omitempty"`
	OverdraftLimit *decimal.Decimal `json:"overdraft_limit,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput() usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		BankName:       r.BankName,
		AccountNumber:  r.AccountNumber,
		OverdraftLimit: r.OverdraftLimit,
	}
}

// AdjustBalanceRequest represents a manual balance override.
type AdjustBalanceRequest struct {
	NewBalance decimal.Decimal `json:"new_balance"`
	Reason     string          `json:"reason"`
	Note       string          `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AdjustBalanceRequest) ToUseCaseInput() usecase.AdjustBalanceInput {
	return usecase.AdjustBalanceInput{
		NewBalance: r.NewBalance,
		Reason:     r.Reason,
		Note:       r.Note,
	}
}

// ReceiptPayload carries a raw receipt file. Content is base64 in JSON.
type ReceiptPayload struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content []byte `json:"content"`
}

func (p *ReceiptPayload) toRawFile() *usecase.RawFile {
	if p == nil {
		return nil
	}

	return &usecase.RawFile{
		Name:    p.Name,
		Type:    p.Type,
		Content: p.Content,
	}
}

// CreateExpenseRequest represents a request to record an expense.
type CreateExpenseRequest struct {
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Receipt     *ReceiptPayload `json:"receipt,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateExpenseRequest) ToUseCaseInput() usecase.AddExpenseInput {
	return usecase.AddExpenseInput{
		AccountID:   r.AccountID,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Receipt:     r.Receipt.toRawFile(),
	}
}

// UpdateExpenseRequest represents a request to edit an expense. UpdateBalance
// defaults to true when absent.
type UpdateExpenseRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	UpdateBalance *bool           `json:"update_balance,omitempty"`
	ReceiptAction string          `json:"receipt_action,omitempty"`
	Receipt       *ReceiptPayload `json:"receipt,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateExpenseRequest) ToUseCaseInput() usecase.UpdateExpenseInput {
	updateBalance := true
	if r.UpdateBalance != nil {
		updateBalance = *r.UpdateBalance
	}

	return usecase.UpdateExpenseInput{
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		UpdateBalance: updateBalance,
		ReceiptAction: usecase.ReceiptAction(r.ReceiptAction),
		Receipt:       r.Receipt.toRawFile(),
	}
}

// CreateDepositRequest represents a request to record a deposit.
type CreateDepositRequest struct {
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDepositRequest) ToUseCaseInput() usecase.AddDepositInput {
	return usecase.AddDepositInput{
		AccountID:   r.AccountID,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
	}
}

// UpdateDepositRequest represents a request to edit a deposit.
type UpdateDepositRequest struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	UpdateBalance *bool           `json:"update_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateDepositRequest) ToUseCaseInput() usecase.UpdateDepositInput {
	updateBalance := true
	if r.UpdateBalance != nil {
		updateBalance = *r.UpdateBalance
	}

	return usecase.UpdateDepositInput{
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date,
		UpdateBalance: updateBalance,
	}
}

// UpdateSettingsRequest represents a settings change.
type UpdateSettingsRequest struct {
	DarkMode bool `json:"dark_mode"`
}
