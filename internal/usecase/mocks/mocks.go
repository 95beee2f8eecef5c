package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/domain"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	ListFunc          func(ctx context.Context) ([]*domain.Account, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Account, error)
	AddFunc           func(ctx context.Context, account *domain.Account) error
	UpdateFunc        func(ctx context.Context, id string, updated *domain.Account) error
	UpdateBalanceFunc func(ctx context.Context, id string, balance decimal.Decimal) error
	RemoveFunc        func(ctx context.Context, id string) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		cp := *acc
		return &cp, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Add(ctx context.Context, account *domain.Account) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if account.ID == "" {
		account.ID = fmt.Sprintf("acc-%d", len(m.accounts)+1)
	}
	cp := *account
	m.accounts[account.ID] = &cp
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, id string, updated *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, updated)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	cp := *updated
	cp.ID = id
	m.accounts[id] = &cp
	return nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, id, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	acc.Balance = balance
	return nil
}

func (m *MockAccountRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(m.accounts, id)
	return nil
}

// MockExpenseRepository is a mock implementation of ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses map[string]*domain.Expense
	order    []string

	ListFunc            func(ctx context.Context) ([]*domain.Expense, error)
	ListByAccountFunc   func(ctx context.Context, accountID string) ([]*domain.Expense, error)
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Expense, error)
	AddFunc             func(ctx context.Context, expense *domain.Expense) error
	UpdateFunc          func(ctx context.Context, id string, updated *domain.Expense) error
	RemoveFunc          func(ctx context.Context, id string) error
	RemoveByAccountFunc func(ctx context.Context, accountID string) error
	TotalByAccountFunc  func(ctx context.Context, accountID string) (decimal.Decimal, error)
}

func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		expenses: make(map[string]*domain.Expense),
	}
}

func (m *MockExpenseRepository) List(ctx context.Context) ([]*domain.Expense, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, id := range m.order {
		if e, ok := m.expenses[id]; ok {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Expense, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var expenses []*domain.Expense
	for _, id := range m.order {
		if e, ok := m.expenses[id]; ok && e.AccountID == accountID {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.expenses[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func (m *MockExpenseRepository) Add(ctx context.Context, expense *domain.Expense) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, expense)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if expense.ID == "" {
		expense.ID = fmt.Sprintf("exp-%d", len(m.expenses)+1)
	}
	cp := *expense
	m.expenses[expense.ID] = &cp
	m.order = append(m.order, expense.ID)
	return nil
}

func (m *MockExpenseRepository) Update(ctx context.Context, id string, updated *domain.Expense) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, updated)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	cp := *updated
	cp.ID = id
	m.expenses[id] = &cp
	return nil
}

func (m *MockExpenseRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.expenses[id]; !ok {
		return domain.ErrExpenseNotFound
	}
	delete(m.expenses, id)
	return nil
}

func (m *MockExpenseRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	if m.RemoveByAccountFunc != nil {
		return m.RemoveByAccountFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.expenses {
		if e.AccountID == accountID {
			delete(m.expenses, id)
		}
	}
	return nil
}

func (m *MockExpenseRepository) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.TotalByAccountFunc != nil {
		return m.TotalByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, e := range m.expenses {
		if e.AccountID == accountID {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

// MockDepositRepository is a mock implementation of DepositRepository.
type MockDepositRepository struct {
	mu       sync.RWMutex
	deposits map[string]*domain.Deposit
	order    []string

	ListFunc            func(ctx context.Context) ([]*domain.Deposit, error)
	ListByAccountFunc   func(ctx context.Context, accountID string) ([]*domain.Deposit, error)
	GetByIDFunc         func(ctx context.Context, id string) (*domain.Deposit, error)
	AddFunc             func(ctx context.Context, deposit *domain.Deposit) error
	UpdateFunc          func(ctx context.Context, id string, updated *domain.Deposit) error
	RemoveFunc          func(ctx context.Context, id string) error
	RemoveByAccountFunc func(ctx context.Context, accountID string) error
	TotalByAccountFunc  func(ctx context.Context, accountID string) (decimal.Decimal, error)
}

func NewMockDepositRepository() *MockDepositRepository {
	return &MockDepositRepository{
		deposits: make(map[string]*domain.Deposit),
	}
}

func (m *MockDepositRepository) List(ctx context.Context) ([]*domain.Deposit, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var deposits []*domain.Deposit
	for _, id := range m.order {
		if d, ok := m.deposits[id]; ok {
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

func (m *MockDepositRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Deposit, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var deposits []*domain.Deposit
	for _, id := range m.order {
		if d, ok := m.deposits[id]; ok && d.AccountID == accountID {
			deposits = append(deposits, d)
		}
	}
	return deposits, nil
}

func (m *MockDepositRepository) GetByID(ctx context.Context, id string) (*domain.Deposit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.deposits[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, domain.ErrDepositNotFound
}

func (m *MockDepositRepository) Add(ctx context.Context, deposit *domain.Deposit) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, deposit)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if deposit.ID == "" {
		deposit.ID = fmt.Sprintf("dep-%d", len(m.deposits)+1)
	}
	cp := *deposit
	m.deposits[deposit.ID] = &cp
	m.order = append(m.order, deposit.ID)
	return nil
}

func (m *MockDepositRepository) Update(ctx context.Context, id string, updated *domain.Deposit) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, updated)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deposits[id]; !ok {
		return domain.ErrDepositNotFound
	}
	cp := *updated
	cp.ID = id
	m.deposits[id] = &cp
	return nil
}

func (m *MockDepositRepository) Remove(ctx context.Context, id string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.deposits[id]; !ok {
		return domain.ErrDepositNotFound
	}
	delete(m.deposits, id)
	return nil
}

func (m *MockDepositRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	if m.RemoveByAccountFunc != nil {
		return m.RemoveByAccountFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, d := range m.deposits {
		if d.AccountID == accountID {
			delete(m.deposits, id)
		}
	}
	return nil
}

func (m *MockDepositRepository) TotalByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	if m.TotalByAccountFunc != nil {
		return m.TotalByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, d := range m.deposits {
		if d.AccountID == accountID {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

// MockAdjustmentRepository is a mock implementation of AdjustmentRepository.
type MockAdjustmentRepository struct {
	mu          sync.RWMutex
	adjustments []*domain.Adjustment

	ListFunc            func(ctx context.Context) ([]*domain.Adjustment, error)
	ListByAccountFunc   func(ctx context.Context, accountID string) ([]*domain.Adjustment, error)
	AddFunc             func(ctx context.Context, adjustment *domain.Adjustment) error
	RemoveByAccountFunc func(ctx context.Context, accountID string) error
}

func NewMockAdjustmentRepository() *MockAdjustmentRepository {
	return &MockAdjustmentRepository{}
}

func (m *MockAdjustmentRepository) List(ctx context.Context) ([]*domain.Adjustment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Adjustment(nil), m.adjustments...), nil
}

func (m *MockAdjustmentRepository) ListByAccount(ctx context.Context, accountID string) ([]*domain.Adjustment, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Adjustment
	for _, adj := range m.adjustments {
		if adj.AccountID == accountID {
			result = append(result, adj)
		}
	}
	return result, nil
}

func (m *MockAdjustmentRepository) Add(ctx context.Context, adjustment *domain.Adjustment) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, adjustment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if adjustment.ID == "" {
		adjustment.ID = fmt.Sprintf("adj-%d", len(m.adjustments)+1)
	}
	cp := *adjustment
	m.adjustments = append(m.adjustments, &cp)
	return nil
}

func (m *MockAdjustmentRepository) RemoveByAccount(ctx context.Context, accountID string) error {
	if m.RemoveByAccountFunc != nil {
		return m.RemoveByAccountFunc(ctx, accountID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.adjustments[:0:0]
	for _, adj := range m.adjustments {
		if adj.AccountID != accountID {
			kept = append(kept, adj)
		}
	}
	m.adjustments = kept
	return nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings

	GetFunc  func(ctx context.Context) (*domain.Settings, error)
	SaveFunc func(ctx context.Context, settings *domain.Settings) error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return domain.DefaultSettings(), nil
	}
	cp := *m.settings
	return &cp, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *settings
	m.settings = &cp
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
