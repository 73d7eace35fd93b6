package models

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (u *User) Validate() error {
	if len(strings.TrimSpace(u.DisplayName)) < 2 { return errors.New("display name too short") }
	if !strings.Contains(u.Email, "@") { return errors.New("invalid email") }
	if u.Role == "" { u.Role = RoleUser }
	return nil
}

// Normalize lowercases the email so logins are case-insensitive.
func (u *User) Normalize() {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
}
