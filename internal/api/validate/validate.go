package validate

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

func NonNegative(field string, v decimal.Decimal) *ErrField {
	if v.IsNegative() {
		return &ErrField{Field: field, Msg: "must be >= 0"}
	}
	return nil
}

// PositiveDays parses a days query parameter, defaulting when empty.
// Returns an ErrField unless the value is a positive integer.
func PositiveDays(field, value string, def int) (int, *ErrField) {
	if strings.TrimSpace(value) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ErrField{Field: field, Msg: "must be an integer"}
	}
	if ef := MinInt(field, int64(n), 1); ef != nil {
		return 0, ef
	}
	return n, nil
}
