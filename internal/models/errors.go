package models

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrForbidden   = errors.New("forbidden")
	ErrDuplicate   = errors.New("already exists")
	ErrInvalidRate = errors.New("rate must be a finite number >= 0")
	ErrBankName    = errors.New("bank name required")
)
