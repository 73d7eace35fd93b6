package rates

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/kmagpayo/yieldtrack-backend/internal/metrics"
	repo "github.com/kmagpayo/yieldtrack-backend/internal/repository"
)

// Propagator pushes a canonical rate change out to every account cached
// against that bank. Runs are idempotent: an account already at the new
// rate is skipped, so re-running a converged propagation performs zero
// writes.
type Propagator struct {
	accounts repo.Accounts
}

func NewPropagator(accounts repo.Accounts) *Propagator {
	return &Propagator{accounts: accounts}
}

// Report summarizes one propagation run. Failed accounts stay at their old
// cached rate until a retry or their next owner write re-binds them.
type Report struct {
	BankName string `json:"bank_name"`
	Updated  int    `json:"updated"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

// Propagate updates the cached yield_rate of every account whose bank_name
// matches exactly. Per-account failures are fail-soft: they are logged and
// counted, and the run continues. Only a failed account scan is returned
// as an error. Update order is unspecified.
func (p *Propagator) Propagate(ctx context.Context, bankName string, newRate decimal.Decimal) (Report, error) {
	rep := Report{BankName: bankName}
	metrics.PropagationRuns.Inc()

	accounts, err := p.accounts.ListByBank(ctx, bankName)
	if err != nil {
		slog.Error("propagation scan failed", "bank", bankName, "err", err)
		return rep, err
	}

	for _, a := range accounts {
		if a.YieldRate.Equal(newRate) {
			rep.Skipped++
			metrics.PropagationAccounts.WithLabelValues("skipped").Inc()
			continue
		}
		if err := p.accounts.UpdateYieldRate(ctx, a.ID, newRate); err != nil {
			rep.Failed++
			metrics.PropagationAccounts.WithLabelValues("failed").Inc()
			slog.Error("propagation update failed",
				"bank", bankName, "account", a.ID, "err", err)
			continue
		}
		rep.Updated++
		metrics.PropagationAccounts.WithLabelValues("updated").Inc()
	}

	slog.Info("propagation done",
		"bank", bankName, "rate", newRate,
		"updated", rep.Updated, "skipped", rep.Skipped, "failed", rep.Failed)
	return rep, nil
}
