package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, email, displayName, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}

type YieldRates interface {
	// Upsert creates the record for bankName or overwrites rate and
	// last_updated on the existing one. Last write wins.
	Upsert(ctx context.Context, bankName string, rate decimal.Decimal) (models.YieldRate, error)
	// GetByBank returns models.ErrNotFound when no rate exists; callers
	// decide whether that is an error state.
	GetByBank(ctx context.Context, bankName string) (models.YieldRate, error)
	// List returns all canonical rates ordered by bank name.
	List(ctx context.Context) ([]models.YieldRate, error)
}

type Accounts interface {
	Create(ctx context.Context, a models.BankAccount) (models.BankAccount, error)
	GetByID(ctx context.Context, id string) (models.BankAccount, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.BankAccount, error)
	// ListByBank is the propagation scan: every account whose bank_name
	// matches exactly, across all owners.
	ListByBank(ctx context.Context, bankName string) ([]models.BankAccount, error)
	Update(ctx context.Context, a models.BankAccount) (models.BankAccount, error)
	// UpdateYieldRate writes only the cached yield_rate column.
	UpdateYieldRate(ctx context.Context, id string, rate decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
