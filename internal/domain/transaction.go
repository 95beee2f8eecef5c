package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a balance-decreasing transaction attributed to an account.
// The receipt fields hold an optional attachment already encoded to its
// transport-safe textual form.
type Expense struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	HasReceipt  bool   `json:"hasReceipt"`
	ReceiptName string `json:"receiptName,omitempty"`
	ReceiptType string `json:"receiptType,omitempty"`
	ReceiptData string `json:"receiptData,omitempty"`
}

// Effect returns the signed balance contribution of the expense.
func (e *Expense) Effect() decimal.Decimal {
	return e.Amount.Neg()
}

// AttachReceipt binds an encoded receipt to the expense.
func (e *Expense) AttachReceipt(r *Receipt) {
	e.HasReceipt = true
	e.ReceiptName = r.Name
	e.ReceiptType = r.Type
	e.ReceiptData = r.Data
}

// StripReceipt removes any attachment from the expense.
func (e *Expense) StripReceipt() {
	e.HasReceipt = false
	e.ReceiptName = ""
	e.ReceiptType = ""
	e.ReceiptData = ""
}

// Deposit is a balance-increasing transaction attributed to an account.
// It is structurally an expense without the attachment fields.
type Deposit struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Effect returns the signed balance contribution of the deposit.
func (d *Deposit) Effect() decimal.Decimal {
	return d.Amount
}

// Receipt is an attachment in its encoded, storable form: a textual
// data payload plus the original file metadata.
type Receipt struct {
	Name string
	Type string
	Data string
}
