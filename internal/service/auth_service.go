package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"wordvault/internal/auth"
	apperrors "wordvault/internal/errors"
	"wordvault/internal/model"
	"wordvault/internal/repository"
)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Signup(ctx context.Context, email, password string) (Outcome, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Signup creates a non-admin user with a hashed password. An email that is
// already registered yields OutcomeConflict and changes nothing.
func (s *authService) Signup(ctx context.Context, email, password string) (Outcome, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrMissingFields
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return OutcomeConflict, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return OutcomeConflict, nil
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed up", "user_id", user.ID)
	return OutcomeCreated, nil
}

// Login verifies the credentials and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperrors.ErrMissingFields
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.logger.WarnContext(ctx, "login with wrong password", "user_id", user.ID)
		return "", apperrors.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
