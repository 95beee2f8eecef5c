package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExpense_Effect(t *testing.T) {
	e := &Expense{Amount: decimal.NewFromInt(30)}

	if got := e.Effect(); !got.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected -30, got %s", got)
	}
}

func TestDeposit_Effect(t *testing.T) {
	d := &Deposit{Amount: decimal.NewFromInt(500)}

	if got := d.Effect(); !got.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected 500, got %s", got)
	}
}

func TestExpense_AttachStripReceipt(t *testing.T) {
	e := &Expense{}

	e.AttachReceipt(&Receipt{
		Name: "invoice.pdf",
		Type: "application/pdf",
		Data: "data:application/pdf;base64,JVBERi0=",
	})

	if !e.HasReceipt || e.ReceiptName != "invoice.pdf" || e.ReceiptData == "" {
		t.Errorf("receipt not attached: %+v", e)
	}

	e.StripReceipt()

	if e.HasReceipt || e.ReceiptName != "" || e.ReceiptType != "" || e.ReceiptData != "" {
		t.Errorf("receipt not fully stripped: %+v", e)
	}
}

func TestNewAdjustment(t *testing.T) {
	adj := NewAdjustment("acc-1",
		decimal.NewFromInt(-500),
		decimal.Zero,
		"correction", "manual fix")

	if !adj.AdjustmentAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected delta 500, got %s", adj.AdjustmentAmount)
	}
	if !adj.OldBalance.Equal(decimal.NewFromInt(-500)) || !adj.NewBalance.Equal(decimal.Zero) {
		t.Errorf("unexpected balances: old=%s new=%s", adj.OldBalance, adj.NewBalance)
	}
}
