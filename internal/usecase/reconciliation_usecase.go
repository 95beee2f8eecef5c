package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// ReconciliationUseCase offers the recovery-path counterpart to the
// incremental delta engine: it recomputes what an account's balance should
// be from its full history and can rewrite the running total to match.
// The normal mutation paths never call this; it only runs on demand.
type ReconciliationUseCase struct {
	accountRepo    AccountRepository
	expenseRepo    ExpenseRepository
	depositRepo    DepositRepository
	adjustmentRepo AdjustmentRepository
	metrics        *metrics.Metrics
}

// NewReconciliationUseCase creates a new ReconciliationUseCase. metrics may
// be nil.
func NewReconciliationUseCase(
	accountRepo AccountRepository,
	expenseRepo ExpenseRepository,
	depositRepo DepositRepository,
	adjustmentRepo AdjustmentRepository,
	metrics *metrics.Metrics,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		accountRepo:    accountRepo,
		expenseRepo:    expenseRepo,
		depositRepo:    depositRepo,
		adjustmentRepo: adjustmentRepo,
		metrics:        metrics,
	}
}

// ConsistencyResult reports one account's recorded balance against the
// balance recomputed from its history.
type ConsistencyResult struct {
	AccountID       string
	RecordedBalance decimal.Decimal
	ComputedBalance decimal.Decimal
	Difference      decimal.Decimal
	Consistent      bool
	CheckedAt       time.Time
}

// computeBalance evaluates opening + deposits - expenses + adjustment deltas.
func (uc *ReconciliationUseCase) computeBalance(ctx context.Context, account *domain.Account) (decimal.Decimal, error) {
	totalExpenses, err := uc.expenseRepo.TotalByAccount(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}

	totalDeposits, err := uc.depositRepo.TotalByAccount(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}

	adjustments, err := uc.adjustmentRepo.ListByAccount(ctx, account.ID)
	if err != nil {
		return decimal.Zero, err
	}

	computed := account.OpeningBalance.Add(totalDeposits).Sub(totalExpenses)
	for _, adj := range adjustments {
		computed = computed.Add(adj.AdjustmentAmount)
	}

	return computed, nil
}

// VerifyAccount checks one account's running balance against its history.
func (uc *ReconciliationUseCase) VerifyAccount(ctx context.Context, id string) (*ConsistencyResult, error) {
	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	computed, err := uc.computeBalance(ctx, account)
	if err != nil {
		return nil, err
	}

	result := &ConsistencyResult{
		AccountID:       id,
		RecordedBalance: account.Balance,
		ComputedBalance: computed,
		Difference:      account.Balance.Sub(computed),
		Consistent:      account.Balance.Equal(computed),
		CheckedAt:       time.Now().UTC(),
	}

	if uc.metrics != nil {
		uc.metrics.ConsistencyChecks.Inc()
		if !result.Consistent {
			uc.metrics.DriftsDetected.Inc()
		}
	}

	return result, nil
}

// VerifyAll checks every account.
func (uc *ReconciliationUseCase) VerifyAll(ctx context.Context) ([]*ConsistencyResult, error) {
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ConsistencyResult, 0, len(accounts))
	for _, account := range accounts {
		result, err := uc.VerifyAccount(ctx, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to verify account %s: %w", account.ID, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// RepairAccount rewrites an account's running balance from its history.
// This is an explicit operator action; a repaired drift is reported in the
// returned result, where RecordedBalance is the value before the repair.
func (uc *ReconciliationUseCase) RepairAccount(ctx context.Context, id string) (*ConsistencyResult, error) {
	result, err := uc.VerifyAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if result.Consistent {
		return result, nil
	}

	if err := uc.accountRepo.UpdateBalance(ctx, id, result.ComputedBalance); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BalancesRepaired.Inc()
	}

	return result, nil
}
