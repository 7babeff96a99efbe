package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "wordvault/internal/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_IssueDecodeRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_ExpiryWindow(t *testing.T) {
	tests := []struct {
		name     string
		issuedAt time.Time
		wantErr  error
	}{
		{"fresh token", time.Now(), nil},
		{"just before five hours", time.Now().Add(-TokenExpiry + time.Minute), nil},
		{"just after five hours", time.Now().Add(-TokenExpiry - time.Second), apperrors.ErrInvalidToken},
		{"long expired", time.Now().Add(-48 * time.Hour), apperrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewJWTService("test-secret", WithClock(fixedClock(tt.issuedAt)))
			token, err := svc.Issue(7)
			require.NoError(t, err)

			userID, err := svc.Decode(token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, userID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(7), userID)
		})
	}
}

func TestJWTService_ExpiresFiveHoursAfterIssue(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret", WithClock(fixedClock(issuedAt)))

	token, err := svc.Issue(1)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = new(jwt.Parser).ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(5*time.Hour), claims.ExpiresAt.Time.UTC())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_DecodeRejects(t *testing.T) {
	svc := NewJWTService("test-secret")

	otherKey, err := NewJWTService("another-secret").Issue(1)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: 1}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"missing", "", apperrors.ErrTokenMissing},
		{"malformed", "not-a-jwt", apperrors.ErrInvalidToken},
		{"three garbage segments", "a.b.c", apperrors.ErrInvalidToken},
		{"different key", otherKey, apperrors.ErrInvalidToken},
		{"no expiry", noExpiry, apperrors.ErrInvalidToken},
		{"no user id", noUser, apperrors.ErrInvalidToken},
		{"alg none", unsigned, apperrors.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := svc.Decode(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, userID)
		})
	}
}

func TestJWTService_ConcurrentUse(t *testing.T) {
	svc := NewJWTService("test-secret")

	var wg sync.WaitGroup
	for i := 1; i <= 32; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			token, err := svc.Issue(id)
			if !assert.NoError(t, err) {
				return
			}
			got, err := svc.Decode(token)
			assert.NoError(t, err)
			assert.Equal(t, id, got)
		}(uint(i))
	}
	wg.Wait()
}
