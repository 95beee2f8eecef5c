package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
)

type expenseServiceStub struct {
	addFn           func(ctx context.Context, input usecase.AddExpenseInput) (*domain.Expense, error)
	getFn           func(ctx context.Context, id string) (*domain.Expense, error)
	listFn          func(ctx context.Context) ([]*domain.Expense, error)
	listByAccountFn func(ctx context.Context, accountID string) ([]*domain.Expense, error)
	updateFn        func(ctx context.Context, id string, input usecase.UpdateExpenseInput) (*domain.Expense, error)
	removeFn        func(ctx context.Context, id string, restoreBalance bool) error
}

func (s *expenseServiceStub) AddExpense(ctx context.Context, input usecase.AddExpenseInput) (*domain.Expense, error) {
	return s.addFn(ctx, input)
}

func (s *expenseServiceStub) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	return s.getFn(ctx, id)
}

func (s *expenseServiceStub) ListExpenses(ctx context.Context) ([]*domain.Expense, error) {
	return s.listFn(ctx)
}

func (s *expenseServiceStub) ListByAccount(ctx context.Context, accountID string) ([]*domain.Expense, error) {
	return s.listByAccountFn(ctx, accountID)
}

func (s *expenseServiceStub) UpdateExpense(ctx context.Context, id string, input usecase.UpdateExpenseInput) (*domain.Expense, error) {
	return s.updateFn(ctx, id, input)
}

func (s *expenseServiceStub) RemoveExpense(ctx context.Context, id string, restoreBalance bool) error {
	return s.removeFn(ctx, id, restoreBalance)
}

func TestExpenseHandler_Create_WithReceipt(t *testing.T) {
	var captured usecase.AddExpenseInput
	h := NewExpenseHandler(&expenseServiceStub{
		addFn: func(ctx context.Context, input usecase.AddExpenseInput) (*domain.Expense, error) {
			captured = input
			return &domain.Expense{ID: "exp-1", AccountID: input.AccountID, Amount: input.Amount, HasReceipt: true}, nil
		},
	})

	body, _ := json.Marshal(dto.CreateExpenseRequest{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(100),
		Receipt: &dto.ReceiptPayload{
			Name:    "receipt.pdf",
			Type:    "application/pdf",
			Content: []byte("%PDF"),
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Receipt == nil || captured.Receipt.Name != "receipt.pdf" {
		t.Fatalf("expected receipt forwarded, got %+v", captured.Receipt)
	}
	if string(captured.Receipt.Content) != "%PDF" {
		t.Fatalf("expected raw content decoded from base64, got %q", captured.Receipt.Content)
	}
}

func TestExpenseHandler_Update_BalanceFlagDefaultsTrue(t *testing.T) {
	var captured usecase.UpdateExpenseInput
	h := NewExpenseHandler(&expenseServiceStub{
		updateFn: func(ctx context.Context, id string, input usecase.UpdateExpenseInput) (*domain.Expense, error) {
			captured = input
			return &domain.Expense{ID: id, Amount: input.Amount}, nil
		},
	})

	body, _ := json.Marshal(dto.UpdateExpenseRequest{Amount: decimal.NewFromInt(70)})
	req := httptest.NewRequest(http.MethodPut, "/expenses/exp-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "exp-1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !captured.UpdateBalance {
		t.Fatal("expected update_balance to default to true")
	}
}

func TestExpenseHandler_Update_SuppressedBalance(t *testing.T) {
	var captured usecase.UpdateExpenseInput
	h := NewExpenseHandler(&expenseServiceStub{
		updateFn: func(ctx context.Context, id string, input usecase.UpdateExpenseInput) (*domain.Expense, error) {
			captured = input
			return &domain.Expense{ID: id}, nil
		},
	})

	off := false
	body, _ := json.Marshal(dto.UpdateExpenseRequest{
		Amount:        decimal.NewFromInt(70),
		UpdateBalance: &off,
		ReceiptAction: "remove",
	})
	req := httptest.NewRequest(http.MethodPut, "/expenses/exp-1", bytes.NewReader(body))
	req = setChiURLParam(req, "id", "exp-1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	if captured.UpdateBalance {
		t.Fatal("expected update_balance false to pass through")
	}
	if captured.ReceiptAction != usecase.ReceiptRemove {
		t.Fatalf("expected receipt action remove, got %q", captured.ReceiptAction)
	}
}

func TestExpenseHandler_Delete_RestoreQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantRestore bool
	}{
		{"default restores", "", true},
		{"explicit true", "?restore_balance=true", true},
		{"explicit false", "?restore_balance=false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRestore bool
			h := NewExpenseHandler(&expenseServiceStub{
				removeFn: func(ctx context.Context, id string, restoreBalance bool) error {
					gotRestore = restoreBalance
					return nil
				},
			})

			req := httptest.NewRequest(http.MethodDelete, "/expenses/exp-1"+tt.query, nil)
			req = setChiURLParam(req, "id", "exp-1")
			rec := httptest.NewRecorder()

			h.Delete(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d", rec.Code)
			}
			if gotRestore != tt.wantRestore {
				t.Errorf("expected restore=%v, got %v", tt.wantRestore, gotRestore)
			}
		})
	}
}

func TestExpenseHandler_DownloadReceipt(t *testing.T) {
	h := NewExpenseHandler(&expenseServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Expense, error) {
			return &domain.Expense{
				ID:          id,
				HasReceipt:  true,
				ReceiptName: "receipt.png",
				ReceiptType: "image/png",
				ReceiptData: "data:image/png;base64,AAEC",
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses/exp-1/receipt", nil)
	req = setChiURLParam(req, "id", "exp-1")
	rec := httptest.NewRecorder()

	h.DownloadReceipt(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("expected image/png, got %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="receipt.png"` {
		t.Errorf("unexpected disposition %q", got)
	}
	if rec.Body.Len() != 3 {
		t.Errorf("expected 3 decoded bytes, got %d", rec.Body.Len())
	}
}

func TestExpenseHandler_DownloadReceipt_NoneAttached(t *testing.T) {
	h := NewExpenseHandler(&expenseServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Expense, error) {
			return &domain.Expense{ID: id}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/expenses/exp-1/receipt", nil)
	req = setChiURLParam(req, "id", "exp-1")
	rec := httptest.NewRecorder()

	h.DownloadReceipt(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
