package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"wordvault/internal/auth"
	"wordvault/internal/cache"
	apperrors "wordvault/internal/errors"
	"wordvault/internal/model"
	"wordvault/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Profile is the public projection of the authenticated user.
type Profile struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	AdminStatus bool   `json:"admin_status"`
}

// UserService exposes user operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	Profile(user *model.User) Profile
	Promote(ctx context.Context, actor *model.User, email string) (Outcome, error)
	EnsureAdmin(ctx context.Context, email, password string) (Outcome, *model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	cache  *cache.Client
	logger *slog.Logger
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, logger *slog.Logger) UserService {
	return &userService{repo: repo, cache: cache, logger: logger}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// GetUser loads a user by id through the cache. Cached copies carry no password hash.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) Profile(user *model.User) Profile {
	return Profile{
		ID:          user.ID,
		Email:       user.Email,
		AdminStatus: user.IsAdmin,
	}
}

// Promote grants admin rights to the user with the given email. Only admins may promote.
func (s *userService) Promote(ctx context.Context, actor *model.User, email string) (Outcome, error) {
	if err := RequireAdmin(actor); err != nil {
		return "", err
	}
	if email == "" {
		return "", apperrors.ErrMissingFields
	}

	target, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OutcomeNotFound, nil
		}
		return "", fmt.Errorf("find user: %w", err)
	}
	if target.IsAdmin {
		return OutcomeAlreadyAdmin, nil
	}

	if err := s.repo.SetAdmin(ctx, target.ID); err != nil {
		return "", fmt.Errorf("promote user %d: %w", target.ID, err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(target.ID))

	s.logger.InfoContext(ctx, "user promoted", "user_id", target.ID, "by", actor.ID)
	return OutcomePromoted, nil
}

// EnsureAdmin makes sure an administrator with this email exists, creating it
// when missing. It backs the seed command, which has no authenticated actor.
func (s *userService) EnsureAdmin(ctx context.Context, email, password string) (Outcome, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, apperrors.ErrMissingFields
	}

	user, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && user.IsAdmin:
		return OutcomeAlreadyAdmin, user, nil
	case err == nil:
		if err := s.repo.SetAdmin(ctx, user.ID); err != nil {
			return "", nil, fmt.Errorf("promote user %d: %w", user.ID, err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
		user.IsAdmin = true
		return OutcomePromoted, user, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}
	user = &model.User{Email: email, PasswordHash: hash, IsAdmin: true}
	if err := s.repo.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create admin: %w", err)
	}
	return OutcomeCreated, user, nil
}
