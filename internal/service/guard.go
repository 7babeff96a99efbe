package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "wordvault/internal/errors"
	"wordvault/internal/model"
)

// TokenDecoder turns a bearer token into the user id it was issued for.
type TokenDecoder interface {
	Decode(token string) (uint, error)
}

// UserLookup loads users by id.
type UserLookup interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

// Guard authenticates bearer tokens. It keeps no per-request state.
type Guard struct {
	tokens TokenDecoder
	users  UserLookup
}

// NewGuard creates a Guard.
func NewGuard(tokens TokenDecoder, users UserLookup) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// RequireToken decodes the token and loads the user it names.
// An empty token is ErrTokenMissing. A bad token or a user that no longer
// exists is ErrInvalidToken.
func (g *Guard) RequireToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, apperrors.ErrTokenMissing
	}
	userID, err := g.tokens.Decode(token)
	if err != nil {
		if errors.Is(err, apperrors.ErrTokenMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	user, err := g.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d no longer exists", apperrors.ErrInvalidToken, userID)
		}
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	return user, nil
}

// RequireAdmin fails with ErrNotAuthorized unless user is an authenticated administrator.
func RequireAdmin(user *model.User) error {
	if user == nil || !user.IsAdmin {
		return apperrors.ErrNotAuthorized
	}
	return nil
}
