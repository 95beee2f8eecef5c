package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account tracked by the ledger. Balance is a
// running total maintained through delta application as transactions are
// recorded; it is never recomputed from history on the read path.
type Account struct {
	ID             string          `json:"id"`
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	Balance        decimal.Decimal `json:"balance"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// AvailableBalance returns the spendable amount including the overdraft limit.
func (a *Account) AvailableBalance() decimal.Decimal {
	return a.Balance.Add(a.OverdraftLimit)
}

// ApplyDebit returns the balance after a balance-decreasing effect.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a balance-increasing effect.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// BalanceStatus classifies a balance for presentation purposes.
type BalanceStatus string

const (
	BalancePositive BalanceStatus = "positive"
	BalanceNegative BalanceStatus = "negative"
	BalanceZero     BalanceStatus = "zero"
)

// StatusOf returns the status classification of a balance.
func StatusOf(balance decimal.Decimal) BalanceStatus {
	switch balance.Sign() {
	case 1:
		return BalancePositive
	case -1:
		return BalanceNegative
	default:
		return BalanceZero
	}
}
