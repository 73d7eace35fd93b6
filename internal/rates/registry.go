// Package rates holds the yield rate synchronization engine: the canonical
// per-bank rate registry and the propagation that keeps account caches in
// step with it.
package rates

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
	"github.com/kmagpayo/yieldtrack-backend/internal/models"
	repo "github.com/kmagpayo/yieldtrack-backend/internal/repository"
)

// Scheduler runs a job off the request path. *worker.Pool satisfies it.
type Scheduler interface {
	Submit(func())
}

// Registry owns the canonical rate per bank. Bank names are case-sensitive
// keys; a bank has at most one rate, overwritten in place on each admin
// submission. Concurrent upserts for the same bank are last-write-wins.
type Registry struct {
	rates repo.YieldRates
	prop  *Propagator
	sched Scheduler
	audit repo.AuditLogs
}

func NewRegistry(rates repo.YieldRates, prop *Propagator, sched Scheduler, audit repo.AuditLogs) *Registry {
	return &Registry{rates: rates, prop: prop, sched: sched, audit: audit}
}

// Upsert validates and persists the canonical rate for bankName, then
// schedules propagation to the accounts cached against it. A rejected rate
// leaves any existing record untouched and schedules nothing. Propagation
// failures never fail the upsert; by the time propagation runs the upsert
// has already committed.
func (s *Registry) Upsert(ctx context.Context, bankName string, rate decimal.Decimal) (models.YieldRate, error) {
	if strings.TrimSpace(bankName) == "" {
		return models.YieldRate{}, models.ErrBankName
	}
	if rate.IsNegative() {
		return models.YieldRate{}, models.ErrInvalidRate
	}

	yr, err := s.rates.Upsert(ctx, bankName, rate)
	if err != nil {
		return models.YieldRate{}, err
	}
	metrics.RateUpsertsTotal.Inc()
	// Best effort; an audit failure never fails the upsert.
	_ = s.audit.Create(ctx, models.AuditLog{
		EntityType: "yield_rate",
		EntityID:   yr.BankName,
		Action:     "rate_upsert",
		Details:    map[string]any{"rate": yr.Rate.String()},
	})

	// Detach from the request deadline; retries converge any stragglers.
	bg := context.WithoutCancel(ctx)
	s.sched.Submit(func() {
		_, _ = s.prop.Propagate(bg, yr.BankName, yr.Rate)
	})
	return yr, nil
}

// Lookup is a pure read. A missing bank is not an error: ok is false and
// the caller decides what an unrated bank means.
func (s *Registry) Lookup(ctx context.Context, bankName string) (models.YieldRate, bool, error) {
	yr, err := s.rates.GetByBank(ctx, bankName)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.YieldRate{}, false, nil
		}
		return models.YieldRate{}, false, err
	}
	return yr, true, nil
}

// Resolve is the binder's read: the canonical rate for bankName, or zero
// when the bank is unrated.
func (s *Registry) Resolve(ctx context.Context, bankName string) (decimal.Decimal, error) {
	yr, ok, err := s.Lookup(ctx, bankName)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, nil
	}
	return yr.Rate, nil
}

// List returns every canonical rate ordered by bank name. Ordering is for
// display; nothing in the engine depends on it.
func (s *Registry) List(ctx context.Context) ([]models.YieldRate, error) {
	return s.rates.List(ctx)
}
