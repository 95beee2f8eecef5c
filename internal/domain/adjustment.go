package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment is the append-only audit record of a manual balance override.
// It is never edited or individually deleted; it only disappears when its
// account is cascade-deleted.
type Adjustment struct {
	ID               string          `json:"id"`
	AccountID        string          `json:"accountId"`
	OldBalance       decimal.Decimal `json:"oldBalance"`
	NewBalance       decimal.Decimal `json:"newBalance"`
	AdjustmentAmount decimal.Decimal `json:"adjustmentAmount"`
	Reason           string          `json:"reason"`
	Note             string          `json:"note"`
	Date             string          `json:"date"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// NewAdjustment builds the audit record for an override of an account's
// balance to newBalance. The delta is derived, never supplied.
func NewAdjustment(accountID string, oldBalance, newBalance decimal.Decimal, reason, note string) *Adjustment {
	return &Adjustment{
		AccountID:        accountID,
		OldBalance:       oldBalance,
		NewBalance:       newBalance,
		AdjustmentAmount: newBalance.Sub(oldBalance),
		Reason:           reason,
		Note:             note,
	}
}
