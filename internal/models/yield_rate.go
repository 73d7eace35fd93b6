package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// YieldRate is the canonical annualized interest rate for one bank.
// bank_name is the key: at most one record per bank, overwritten in place
// on every admin submission (no history).
type YieldRate struct {
	BankName    string          `json:"bank_name"`
	Rate        decimal.Decimal `json:"rate"` // percent, annualized
	LastUpdated time.Time       `json:"last_updated"`
}
