package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func newReconciliationUseCase() (*usecase.ReconciliationUseCase, *mocks.MockAccountRepository, *mocks.MockExpenseRepository, *mocks.MockDepositRepository, *mocks.MockAdjustmentRepository) {
	accountRepo := mocks.NewMockAccountRepository()
	expenseRepo := mocks.NewMockExpenseRepository()
	depositRepo := mocks.NewMockDepositRepository()
	adjustmentRepo := mocks.NewMockAdjustmentRepository()
	m := metrics.NewWith(prometheus.NewRegistry())
	uc := usecase.NewReconciliationUseCase(accountRepo, expenseRepo, depositRepo, adjustmentRepo, m)
	return uc, accountRepo, expenseRepo, depositRepo, adjustmentRepo
}

func TestReconciliationUseCase_VerifyAccount(t *testing.T) {
	t.Run("consistent account", func(t *testing.T) {
		uc, accountRepo, expenseRepo, depositRepo, _ := newReconciliationUseCase()
		ctx := context.Background()

		if err := accountRepo.Add(ctx, &domain.Account{
			ID:             "acc-1",
			OpeningBalance: decimal.NewFromInt(1000),
			Balance:        decimal.NewFromInt(1300),
		}); err != nil {
			t.Fatal(err)
		}
		if err := depositRepo.Add(ctx, &domain.Deposit{AccountID: "acc-1", Amount: decimal.NewFromInt(500)}); err != nil {
			t.Fatal(err)
		}
		if err := expenseRepo.Add(ctx, &domain.Expense{AccountID: "acc-1", Amount: decimal.NewFromInt(200)}); err != nil {
			t.Fatal(err)
		}

		result, err := uc.VerifyAccount(ctx, "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Consistent {
			t.Errorf("expected consistent, difference %s", result.Difference)
		}
		if !result.ComputedBalance.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("expected computed 1300, got %s", result.ComputedBalance)
		}
	})

	t.Run("adjustments count toward the computed balance", func(t *testing.T) {
		uc, accountRepo, _, _, adjustmentRepo := newReconciliationUseCase()
		ctx := context.Background()

		if err := accountRepo.Add(ctx, &domain.Account{
			ID:             "acc-1",
			OpeningBalance: decimal.NewFromInt(100),
			Balance:        decimal.NewFromInt(250),
		}); err != nil {
			t.Fatal(err)
		}
		if err := adjustmentRepo.Add(ctx, &domain.Adjustment{
			AccountID:        "acc-1",
			OldBalance:       decimal.NewFromInt(100),
			NewBalance:       decimal.NewFromInt(250),
			AdjustmentAmount: decimal.NewFromInt(150),
		}); err != nil {
			t.Fatal(err)
		}

		result, err := uc.VerifyAccount(ctx, "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Consistent {
			t.Errorf("expected consistent, difference %s", result.Difference)
		}
	})

	t.Run("drifted account reported with the difference", func(t *testing.T) {
		uc, accountRepo, _, depositRepo, _ := newReconciliationUseCase()
		ctx := context.Background()

		if err := accountRepo.Add(ctx, &domain.Account{
			ID:             "acc-1",
			OpeningBalance: decimal.NewFromInt(1000),
			Balance:        decimal.NewFromInt(1400),
		}); err != nil {
			t.Fatal(err)
		}
		if err := depositRepo.Add(ctx, &domain.Deposit{AccountID: "acc-1", Amount: decimal.NewFromInt(500)}); err != nil {
			t.Fatal(err)
		}

		result, err := uc.VerifyAccount(ctx, "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Consistent {
			t.Error("expected drift to be reported")
		}
		if !result.ComputedBalance.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected computed 1500, got %s", result.ComputedBalance)
		}
		if !result.Difference.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("expected difference -100, got %s", result.Difference)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		uc, _, _, _, _ := newReconciliationUseCase()
		if _, err := uc.VerifyAccount(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestReconciliationUseCase_VerifyAll(t *testing.T) {
	uc, accountRepo, _, depositRepo, _ := newReconciliationUseCase()
	ctx := context.Background()

	if err := accountRepo.Add(ctx, &domain.Account{
		ID:             "good",
		OpeningBalance: decimal.NewFromInt(10),
		Balance:        decimal.NewFromInt(10),
	}); err != nil {
		t.Fatal(err)
	}
	if err := accountRepo.Add(ctx, &domain.Account{
		ID:             "drifted",
		OpeningBalance: decimal.NewFromInt(10),
		Balance:        decimal.NewFromInt(99),
	}); err != nil {
		t.Fatal(err)
	}
	if err := depositRepo.Add(ctx, &domain.Deposit{AccountID: "drifted", Amount: decimal.NewFromInt(5)}); err != nil {
		t.Fatal(err)
	}

	results, err := uc.VerifyAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	byID := make(map[string]*usecase.ConsistencyResult, len(results))
	for _, r := range results {
		byID[r.AccountID] = r
	}
	if !byID["good"].Consistent {
		t.Error("expected good account consistent")
	}
	if byID["drifted"].Consistent {
		t.Error("expected drifted account flagged")
	}
}

func TestReconciliationUseCase_RepairAccount(t *testing.T) {
	t.Run("rewrites a drifted balance", func(t *testing.T) {
		uc, accountRepo, expenseRepo, _, _ := newReconciliationUseCase()
		ctx := context.Background()

		if err := accountRepo.Add(ctx, &domain.Account{
			ID:             "acc-1",
			OpeningBalance: decimal.NewFromInt(1000),
			Balance:        decimal.NewFromInt(777),
		}); err != nil {
			t.Fatal(err)
		}
		if err := expenseRepo.Add(ctx, &domain.Expense{AccountID: "acc-1", Amount: decimal.NewFromInt(300)}); err != nil {
			t.Fatal(err)
		}

		result, err := uc.RepairAccount(ctx, "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.RecordedBalance.Equal(decimal.NewFromInt(777)) {
			t.Errorf("expected pre-repair recorded balance 777, got %s", result.RecordedBalance)
		}

		account, err := accountRepo.GetByID(ctx, "acc-1")
		if err != nil {
			t.Fatal(err)
		}
		if !account.Balance.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected balance repaired to 700, got %s", account.Balance)
		}
	})

	t.Run("consistent account left alone", func(t *testing.T) {
		uc, accountRepo, _, _, _ := newReconciliationUseCase()
		ctx := context.Background()

		called := false
		if err := accountRepo.Add(ctx, &domain.Account{
			ID:             "acc-1",
			OpeningBalance: decimal.NewFromInt(50),
			Balance:        decimal.NewFromInt(50),
		}); err != nil {
			t.Fatal(err)
		}
		accountRepo.UpdateBalanceFunc = func(ctx context.Context, id string, balance decimal.Decimal) error {
			called = true
			return nil
		}

		result, err := uc.RepairAccount(ctx, "acc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Consistent {
			t.Error("expected consistent result")
		}
		if called {
			t.Error("expected no balance write for a consistent account")
		}
	})
}
