package services

import (
	"context"
	"errors"

	"github.com/kmagpayo/yieldtrack-backend/internal/auth"
	"github.com/kmagpayo/yieldtrack-backend/internal/models"
	repo "github.com/kmagpayo/yieldtrack-backend/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	r repo.Users
}

func NewUserService(r repo.Users) *UserService { return &UserService{r: r} }

func (s *UserService) Register(ctx context.Context, email, displayName, password string) (models.User, error) {
	u := models.User{Email: email, DisplayName: displayName, Role: models.RoleUser}
	u.Normalize()
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if len(password) < 8 {
		return models.User{}, errors.New("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.r.Create(ctx, u.Email, u.DisplayName, hash, u.Role)
}

func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	u := models.User{Email: email}
	u.Normalize()
	found, err := s.r.GetByEmail(ctx, u.Email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, found.PasswordHash); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	_ = s.r.TouchLastLogin(ctx, found.ID)
	return found, nil
}
