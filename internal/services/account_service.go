package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
	"github.com/kmagpayo/yieldtrack-backend/internal/models"
	"github.com/kmagpayo/yieldtrack-backend/internal/projection"
	"github.com/kmagpayo/yieldtrack-backend/internal/rates"
	repo "github.com/kmagpayo/yieldtrack-backend/internal/repository"
)

var ErrDaysNotPositive = errors.New("days must be a positive integer")

// AccountService is the owner-facing CRUD surface. On every create and
// update it re-binds the account's cached yield rate from the registry,
// the lazy half of cache reconciliation (propagation being the eager one).
// Whatever rate value the owner sends is overwritten.
type AccountService struct {
	accounts repo.Accounts
	registry *rates.Registry
}

func NewAccountService(accounts repo.Accounts, registry *rates.Registry) *AccountService {
	return &AccountService{accounts: accounts, registry: registry}
}

// AccountInput carries the owner-mutable fields.
type AccountInput struct {
	DisplayName string
	BankName    string
	Balance     decimal.Decimal
}

func (s *AccountService) Create(ctx context.Context, ownerID string, in AccountInput) (models.BankAccount, error) {
	a := models.BankAccount{
		OwnerID:     ownerID,
		DisplayName: in.DisplayName,
		BankName:    in.BankName,
		Balance:     in.Balance,
	}
	if err := a.Validate(); err != nil {
		return models.BankAccount{}, err
	}
	rate, err := s.registry.Resolve(ctx, a.BankName)
	if err != nil {
		return models.BankAccount{}, err
	}
	a.YieldRate = rate
	return s.accounts.Create(ctx, a)
}

func (s *AccountService) Get(ctx context.Context, ownerID, id string) (models.BankAccount, error) {
	return s.owned(ctx, ownerID, id)
}

func (s *AccountService) List(ctx context.Context, ownerID string) ([]models.BankAccount, error) {
	return s.accounts.ListByOwner(ctx, ownerID)
}

func (s *AccountService) Update(ctx context.Context, ownerID, id string, in AccountInput) (models.BankAccount, error) {
	a, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return models.BankAccount{}, err
	}
	a.DisplayName = in.DisplayName
	a.BankName = in.BankName
	a.Balance = in.Balance
	if err := a.Validate(); err != nil {
		return models.BankAccount{}, err
	}
	rate, err := s.registry.Resolve(ctx, a.BankName)
	if err != nil {
		return models.BankAccount{}, err
	}
	a.YieldRate = rate
	return s.accounts.Update(ctx, a)
}

func (s *AccountService) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.accounts.Delete(ctx, id)
}

// Projection computes a compound-interest projection for one account.
// days is validated here; the calculator assumes a positive horizon.
func (s *AccountService) Projection(ctx context.Context, ownerID, id string, days int) (projection.Result, error) {
	if days <= 0 {
		return projection.Result{}, ErrDaysNotPositive
	}
	a, err := s.owned(ctx, ownerID, id)
	if err != nil {
		return projection.Result{}, err
	}
	metrics.ProjectionsTotal.Inc()
	return projection.Project(a.Balance, a.YieldRate, days), nil
}

func (s *AccountService) owned(ctx context.Context, ownerID, id string) (models.BankAccount, error) {
	a, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return models.BankAccount{}, err
	}
	if a.OwnerID != ownerID {
		return models.BankAccount{}, models.ErrForbidden
	}
	return a, nil
}
