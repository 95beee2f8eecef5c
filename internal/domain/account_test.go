package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccount_AvailableBalance(t *testing.T) {
	tests := []struct {
		name           string
		balance        string
		overdraftLimit string
		want           string
	}{
		{"positive balance with limit", "1000", "200", "1200"},
		{"negative balance inside limit", "-500", "200", "-300"},
		{"zero limit", "150.50", "0", "150.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := &Account{
				Balance:        decimal.RequireFromString(tt.balance),
				OverdraftLimit: decimal.RequireFromString(tt.overdraftLimit),
			}

			got := acc.AvailableBalance()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestAccount_ApplyDebitCredit(t *testing.T) {
	acc := &Account{Balance: decimal.NewFromInt(100)}

	if got := acc.ApplyDebit(decimal.NewFromInt(30)); !got.Equal(decimal.NewFromInt(70)) {
		t.Errorf("expected 70 after debit, got %s", got)
	}

	if got := acc.ApplyCredit(decimal.NewFromInt(50)); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("expected 150 after credit, got %s", got)
	}

	// The account itself is untouched; callers persist the returned value.
	if !acc.Balance.Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance mutated in place: %s", acc.Balance)
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		balance string
		want    BalanceStatus
	}{
		{"10", BalancePositive},
		{"-0.01", BalanceNegative},
		{"0", BalanceZero},
	}

	for _, tt := range tests {
		if got := StatusOf(decimal.RequireFromString(tt.balance)); got != tt.want {
			t.Errorf("StatusOf(%s) = %s, want %s", tt.balance, got, tt.want)
		}
	}
}
