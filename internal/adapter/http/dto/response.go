package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID               string          `json:"id"`
	BankName         string          `json:"bank_name"`
	AccountNumber    string          `json:"account_number"`
	Balance          decimal.Decimal `json:"balance"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	OverdraftLimit   decimal.Decimal `json:"overdraft_limit"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	BalanceStatus    string          `json:"balance_status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:               a.ID,
		BankName:         a.BankName,
		AccountNumber:    a.AccountNumber,
		Balance:          a.Balance,
		OpeningBalance:   a.OpeningBalance,
		OverdraftLimit:   a.OverdraftLimit,
		AvailableBalance: a.AvailableBalance(),
		BalanceStatus:    string(domain.StatusOf(a.Balance)),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TotalBalanceResponse reports the sum of all running balances.
type TotalBalanceResponse struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// AccountSummaryResponse represents the per-account aggregate view.
type AccountSummaryResponse struct {
	Account          *AccountResponse `json:"account"`
	AvailableBalance decimal.Decimal  `json:"available_balance"`
	TotalExpenses    decimal.Decimal  `json:"total_expenses"`
	TotalDeposits    decimal.Decimal  `json:"total_deposits"`
}

// SummaryFromUseCase converts a usecase summary to a response.
func SummaryFromUseCase(s *usecase.AccountSummary) *AccountSummaryResponse {
	return &AccountSummaryResponse{
		Account:          AccountFromDomain(s.Account),
		AvailableBalance: s.AvailableBalance,
		TotalExpenses:    s.TotalExpenses,
		TotalDeposits:    s.TotalDeposits,
	}
}

// ExpenseResponse represents an expense in API responses. Receipt content is
// deliberately absent; it is served by the receipt download endpoint.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	HasReceipt  bool            `json:"has_receipt"`
	ReceiptName string          `json:"receipt_name,omitempty"`
	ReceiptType string          `json:"receipt_type,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseFromDomain converts a domain expense to a response.
func ExpenseFromDomain(e *domain.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		AccountID:   e.AccountID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		HasReceipt:  e.HasReceipt,
		ReceiptName: e.ReceiptName,
		ReceiptType: e.ReceiptType,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ExpensesFromDomain converts domain expenses to responses.
func ExpensesFromDomain(expenses []*domain.Expense) []*ExpenseResponse {
	result := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		result[i] = ExpenseFromDomain(e)
	}
	return result
}

// DepositResponse represents a deposit in API responses.
type DepositResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DepositFromDomain converts a domain deposit to a response.
func DepositFromDomain(d *domain.Deposit) *DepositResponse {
	return &DepositResponse{
		ID:          d.ID,
		AccountID:   d.AccountID,
		Category:    d.Category,
		Description: d.Description,
		Amount:      d.Amount,
		Date:        d.Date,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// DepositsFromDomain converts domain deposits to responses.
func DepositsFromDomain(deposits []*domain.Deposit) []*DepositResponse {
	result := make([]*DepositResponse, len(deposits))
	for i, d := range deposits {
		result[i] = DepositFromDomain(d)
	}
	return result
}

// AdjustmentResponse represents a balance adjustment audit record.
type AdjustmentResponse struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"account_id"`
	OldBalance       decimal.Decimal `json:"old_balance"`
	NewBalance       decimal.Decimal `json:"new_balance"`
	AdjustmentAmount decimal.Decimal `json:"adjustment_amount"`
	Reason           string          `json:"reason"`
	Note             string          `json:"note,omitempty"`
	Date             string          `json:"date"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AdjustmentFromDomain converts a domain adjustment to a response.
func AdjustmentFromDomain(a *domain.Adjustment) *AdjustmentResponse {
	return &AdjustmentResponse{
		ID:               a.ID,
		AccountID:        a.AccountID,
		OldBalance:       a.OldBalance,
		NewBalance:       a.NewBalance,
		AdjustmentAmount: a.AdjustmentAmount,
		Reason:           a.Reason,
		Note:             a.Note,
		Date:             a.Date,
		CreatedAt:        a.CreatedAt,
	}
}

// AdjustmentsFromDomain converts domain adjustments to responses.
func AdjustmentsFromDomain(adjustments []*domain.Adjustment) []*AdjustmentResponse {
	result := make([]*AdjustmentResponse, len(adjustments))
	for i, a := range adjustments {
		result[i] = AdjustmentFromDomain(a)
	}
	return result
}

// SettingsResponse represents user settings.
type SettingsResponse struct {
	DarkMode bool `json:"dark_mode"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{DarkMode: s.DarkMode}
}

// ConsistencyResponse reports one account's recorded balance against the
// balance recomputed from its history.
type ConsistencyResponse struct {
	AccountID       string          `json:"account_id"`
	RecordedBalance decimal.Decimal `json:"recorded_balance"`
	ComputedBalance decimal.Decimal `json:"computed_balance"`
	Difference      decimal.Decimal `json:"difference"`
	Consistent      bool            `json:"consistent"`
	CheckedAt       time.Time       `json:"checked_at"`
}

// ConsistencyFromUseCase converts a usecase result to a response.
func ConsistencyFromUseCase(r *usecase.ConsistencyResult) *ConsistencyResponse {
	return &ConsistencyResponse{
		AccountID:       r.AccountID,
		RecordedBalance: r.RecordedBalance,
		ComputedBalance: r.ComputedBalance,
		Difference:      r.Difference,
		Consistent:      r.Consistent,
		CheckedAt:       r.CheckedAt,
	}
}

// ConsistenciesFromUseCase converts usecase results to responses.
func ConsistenciesFromUseCase(results []*usecase.ConsistencyResult) []*ConsistencyResponse {
	out := make([]*ConsistencyResponse, len(results))
	for i, r := range results {
		out[i] = ConsistencyFromUseCase(r)
	}
	return out
}
