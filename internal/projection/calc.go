// Package projection computes compound-interest projections for account
// balances. All arithmetic is decimal to keep currency values exact until
// the final 2-place rounding.
package projection

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDays is the projection horizon used when a caller does not ask
// for a specific one.
const DefaultDays = 40

var (
	one         = decimal.NewFromInt(1)
	percentYear = decimal.NewFromInt(36500) // 100 * 365
)

// Result is a point-in-time projection. Derived on demand, never persisted.
type Result struct {
	CurrentBalance   decimal.Decimal `json:"current_balance"`
	ProjectedBalance decimal.Decimal `json:"projected_balance"`
	YieldRate        decimal.Decimal `json:"yield_rate"`
	Days             int             `json:"days"`
	AnnualEarnings   decimal.Decimal `json:"annual_earnings"`
	ProjectionDate   time.Time       `json:"projection_date"`
}

// Project compounds balance daily over the given horizon. The annual
// percentage is converted with a plain rate/36500 division rather than an
// effective-daily-rate derivation; that approximation is intentional and
// load-bearing for compatibility with stored expectations.
//
// days must be positive; callers validate before invoking.
func Project(balance, annualRatePercent decimal.Decimal, days int) Result {
	return Result{
		CurrentBalance:   balance,
		ProjectedBalance: compound(balance, annualRatePercent, days),
		YieldRate:        annualRatePercent,
		Days:             days,
		AnnualEarnings:   annualEarnings(balance, annualRatePercent),
		ProjectionDate:   time.Now().AddDate(0, 0, days),
	}
}

// compound returns round2(balance * (1 + rate/36500)^days).
// A zero rate short-circuits to the balance unchanged, not rounded.
func compound(balance, annualRatePercent decimal.Decimal, days int) decimal.Decimal {
	if annualRatePercent.IsZero() {
		return balance
	}
	dailyRate := annualRatePercent.Div(percentYear)
	growth := one.Add(dailyRate).Pow(decimal.NewFromInt(int64(days)))
	return balance.Mul(growth).Round(2)
}

// annualEarnings re-runs the same compounding at a fixed 365-day horizon;
// earnings are never annualized from a shorter projection.
func annualEarnings(balance, annualRatePercent decimal.Decimal) decimal.Decimal {
	if annualRatePercent.IsZero() {
		return decimal.Zero.Round(2)
	}
	return compound(balance, annualRatePercent, 365).Sub(balance).Round(2)
}
