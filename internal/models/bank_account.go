package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a user-owned savings account snapshot. Balance is supplied
// by the owner, not derived. YieldRate is a denormalized cache of the
// registry's rate for BankName; only the sync engine writes it.
type BankAccount struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	DisplayName string          `json:"display_name"`
	BankName    string          `json:"bank_name"`
	Balance     decimal.Decimal `json:"balance"`
	YieldRate   decimal.Decimal `json:"yield_rate"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a *BankAccount) Validate() error {
	if strings.TrimSpace(a.DisplayName) == "" { return errors.New("display name required") }
	if strings.TrimSpace(a.BankName) == "" { return errors.New("bank name required") }
	if a.Balance.IsNegative() { return errors.New("balance must be >= 0") }
	return nil
}
