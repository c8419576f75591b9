package services

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"glamar-shop/models"
	"glamar-shop/repositories"
	"glamar-shop/utils"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// unknownUserHash is verified against when the email is not registered so
// that both login failures cost one argon2 computation.
func unknownUserHash() string {
	dummyHashOnce.Do(func() {
		dummyHash, _ = utils.HashPassword("glamar-shop/unknown-user")
	})
	return dummyHash
}

func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, newValidationError("Email and password are required")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong
// password.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if req.Email == "" || req.Password == "" {
		return nil, newValidationError("Email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			_, _ = utils.VerifyPassword(unknownUserHash(), req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	valid, err := utils.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
