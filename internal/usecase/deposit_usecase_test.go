package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/usecase"
	"github.com/iho/fintrack/internal/usecase/mocks"
)

func newDepositUseCase() (*usecase.DepositUseCase, *mocks.MockDepositRepository, *mocks.MockAccountRepository) {
	depositRepo := mocks.NewMockDepositRepository()
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewDepositUseCase(depositRepo, accountRepo, testLogger())
	return uc, depositRepo, accountRepo
}

func TestDepositUseCase_AddDeposit(t *testing.T) {
	t.Run("credits the account", func(t *testing.T) {
		uc, _, accountRepo := newDepositUseCase()
		seedAccount(t, accountRepo, 1000)

		deposit, err := uc.AddDeposit(context.Background(), usecase.AddDepositInput{
			AccountID: "acc-1",
			Category:  "salary",
			Amount:    decimal.NewFromInt(500),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deposit.ID == "" {
			t.Error("expected generated ID")
		}
		if got := currentBalance(t, accountRepo, "acc-1"); !got.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected balance 1500, got %s", got)
		}
	})

	t.Run("invalid amount rejected", func(t *testing.T) {
		uc, depositRepo, _ := newDepositUseCase()

		_, err := uc.AddDeposit(context.Background(), usecase.AddDepositInput{
			AccountID: "acc-1",
			Amount:    decimal.Zero,
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("expected ErrInvalidAmount, got %v", err)
		}

		deposits, _ := depositRepo.List(context.Background())
		if len(deposits) != 0 {
			t.Errorf("expected nothing persisted, got %d deposits", len(deposits))
		}
	})

	t.Run("missing account is a benign no-op for the balance", func(t *testing.T) {
		uc, depositRepo, _ := newDepositUseCase()

		deposit, err := uc.AddDeposit(context.Background(), usecase.AddDepositInput{
			AccountID: "long-gone",
			Amount:    decimal.NewFromInt(50),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := depositRepo.GetByID(context.Background(), deposit.ID); err != nil {
			t.Errorf("expected deposit persisted despite missing account: %v", err)
		}
	})
}

func TestDepositUseCase_UpdateDeposit(t *testing.T) {
	t.Run("balance moves by the difference", func(t *testing.T) {
		uc, _, accountRepo := newDepositUseCase()
		ctx := context.Background()
		seedAccount(t, accountRepo, 1000)

		deposit, err := uc.AddDeposit(ctx, usecase.AddDepositInput{
			AccountID: "acc-1",
			Amount:    decimal.NewFromInt(300),
		})
		if err != nil {
			t.Fatal(err)
		}

		// 300 -> 100: the credit shrinks by 200
		if _, err := uc.UpdateDeposit(ctx, deposit.ID, usecase.UpdateDepositInput{
			Amount:        decimal.NewFromInt(100),
			UpdateBalance: true,
		}); err != nil {
			t.Fatal(err)
		}
		if got := currentBalance(t, accountRepo, "acc-1"); !got.Equal(decimal.NewFromInt(1100)) {
			t.Errorf("expected balance 1100, got %s", got)
		}
	})

	t.Run("balance untouched when update is suppressed", func(t *testing.T) {
		uc, _, accountRepo := newDepositUseCase()
		ctx := context.Background()
		seedAccount(t, accountRepo, 1000)

		deposit, err := uc.AddDeposit(ctx, usecase.AddDepositInput{
			AccountID: "acc-1",
			Amount:    decimal.NewFromInt(300),
		})
		if err != nil {
			t.Fatal(err)
		}

		if _, err := uc.UpdateDeposit(ctx, deposit.ID, usecase.UpdateDepositInput{
			Amount:        decimal.NewFromInt(100),
			UpdateBalance: false,
		}); err != nil {
			t.Fatal(err)
		}
		if got := currentBalance(t, accountRepo, "acc-1"); !got.Equal(decimal.NewFromInt(1300)) {
			t.Errorf("expected balance 1300, got %s", got)
		}
	})

	t.Run("unknown deposit", func(t *testing.T) {
		uc, _, _ := newDepositUseCase()
		_, err := uc.UpdateDeposit(context.Background(), "missing", usecase.UpdateDepositInput{
			Amount: decimal.NewFromInt(10),
		})
		if !errors.Is(err, domain.ErrDepositNotFound) {
			t.Errorf("expected ErrDepositNotFound, got %v", err)
		}
	})
}

func TestDepositUseCase_RemoveDeposit(t *testing.T) {
	t.Run("add then remove restores the starting balance", func(t *testing.T) {
		uc, _, accountRepo := newDepositUseCase()
		ctx := context.Background()
		seedAccount(t, accountRepo, 1000)

		deposit, err := uc.AddDeposit(ctx, usecase.AddDepositInput{
			AccountID: "acc-1",
			Amount:    decimal.NewFromInt(400),
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := uc.RemoveDeposit(ctx, deposit.ID, true); err != nil {
			t.Fatal(err)
		}
		if got := currentBalance(t, accountRepo, "acc-1"); !got.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected balance restored to 1000, got %s", got)
		}
	})

	t.Run("restore suppressed leaves the balance alone", func(t *testing.T) {
		uc, _, accountRepo := newDepositUseCase()
		ctx := context.Background()
		seedAccount(t, accountRepo, 1000)

		deposit, err := uc.AddDeposit(ctx, usecase.AddDepositInput{
			AccountID: "acc-1",
			Amount:    decimal.NewFromInt(400),
		})
		if err != nil {
			t.Fatal(err)
		}
		if err := uc.RemoveDeposit(ctx, deposit.ID, false); err != nil {
			t.Fatal(err)
		}
		if got := currentBalance(t, accountRepo, "acc-1"); !got.Equal(decimal.NewFromInt(1400)) {
			t.Errorf("expected balance left at 1400, got %s", got)
		}
	})
}
