package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kmagpayo/yieldtrack-backend/internal/models"
)

// MockAccounts is a mock implementation of repository.Accounts.
type MockAccounts struct {
	mock.Mock
}

func (m *MockAccounts) Create(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.BankAccount), args.Error(1)
}

func (m *MockAccounts) GetByID(ctx context.Context, id string) (models.BankAccount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.BankAccount), args.Error(1)
}

func (m *MockAccounts) ListByOwner(ctx context.Context, ownerID string) ([]models.BankAccount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BankAccount), args.Error(1)
}

func (m *MockAccounts) ListByBank(ctx context.Context, bankName string) ([]models.BankAccount, error) {
	args := m.Called(ctx, bankName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BankAccount), args.Error(1)
}

func (m *MockAccounts) Update(ctx context.Context, a models.BankAccount) (models.BankAccount, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(models.BankAccount), args.Error(1)
}

func (m *MockAccounts) UpdateYieldRate(ctx context.Context, id string, rate decimal.Decimal) error {
	args := m.Called(ctx, id, rate)
	return args.Error(0)
}

func (m *MockAccounts) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockYieldRates is a mock implementation of repository.YieldRates.
type MockYieldRates struct {
	mock.Mock
}

func (m *MockYieldRates) Upsert(ctx context.Context, bankName string, rate decimal.Decimal) (models.YieldRate, error) {
	args := m.Called(ctx, bankName, rate)
	return args.Get(0).(models.YieldRate), args.Error(1)
}

func (m *MockYieldRates) GetByBank(ctx context.Context, bankName string) (models.YieldRate, error) {
	args := m.Called(ctx, bankName)
	return args.Get(0).(models.YieldRate), args.Error(1)
}

func (m *MockYieldRates) List(ctx context.Context) ([]models.YieldRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.YieldRate), args.Error(1)
}

// MockUsers is a mock implementation of repository.Users.
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Create(ctx context.Context, email, displayName, passwordHash, role string) (models.User, error) {
	args := m.Called(ctx, email, displayName, passwordHash, role)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) TouchLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditLogs is a mock implementation of repository.AuditLogs.
type MockAuditLogs struct {
	mock.Mock
}

func (m *MockAuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// syncScheduler runs scheduled jobs inline.
type syncScheduler struct{}

func (syncScheduler) Submit(f func()) { f() }
