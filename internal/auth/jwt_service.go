package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "wordvault/internal/errors"
)

// TokenExpiry is how long an issued token stays valid. Tokens are not renewable.
const TokenExpiry = 5 * time.Hour

// Claims represents JWT claims.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTService issues and decodes stateless HS256 session tokens.
// It holds no mutable state and is safe for concurrent use.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a JWTService.
type Option func(*JWTService)

// WithTTL overrides TokenExpiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *JWTService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source used when issuing tokens.
func WithClock(now func() time.Time) Option {
	return func(s *JWTService) {
		s.now = now
	}
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string, opts ...Option) *JWTService {
	s := &JWTService{
		secret: []byte(secret),
		ttl:    TokenExpiry,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a signed token for the user expiring after the configured TTL.
func (s *JWTService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies signature and expiry and returns the user id the token was issued for.
// An empty token yields ErrTokenMissing; every other failure yields ErrInvalidToken.
func (s *JWTService) Decode(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, apperrors.ErrTokenMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, apperrors.ErrInvalidToken
	}
	// jwt/v4 treats a missing exp as "never expires"; we do not.
	if claims.ExpiresAt == nil {
		return 0, fmt.Errorf("%w: missing expiry", apperrors.ErrInvalidToken)
	}
	if claims.UserID == 0 {
		return 0, fmt.Errorf("%w: missing user id", apperrors.ErrInvalidToken)
	}
	return claims.UserID, nil
}
