package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/artsfest/scoreboard/models"
	"github.com/artsfest/scoreboard/repositories"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*models.User, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	userRepo repositories.UserRepository
	logger   *slog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, logger *slog.Logger) AuthService {
	return &authService{userRepo: userRepo, logger: logger}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin creates the bootstrap admin account when the users table is
// empty. A no-op when credentials are not configured or users already exist.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil // raced with another instance, fine
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.logger.Info("bootstrap admin created", slog.String("email", user.Email))
	return nil
}
