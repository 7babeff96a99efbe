package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"wordvault/internal/cache"
)

const keyPrefix = "wordvault:ratelimit:"

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed   bool
	Count     int
	Limit     int
	WindowEnd time.Time
}

// Limiter is a fixed-window counter backed by Redis. It fails open: when Redis
// is unreachable every request is allowed.
type Limiter struct {
	cache  *cache.Client
	logger *slog.Logger
	limit  int
	window time.Duration
}

// New creates a limiter allowing limit hits per window. A limit <= 0 disables it.
func New(c *cache.Client, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{cache: c, logger: logger, limit: limit, window: window}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	if l == nil || l.limit <= 0 {
		return Decision{Allowed: true}
	}
	count, remaining, err := l.cache.Incr(ctx, keyPrefix+key, l.window)
	if err != nil {
		if l.logger != nil && err != cache.ErrUnavailable {
			l.logger.ErrorContext(ctx, "rate limiter redis error", "error", err)
		}
		return Decision{Allowed: true, Limit: l.limit}
	}
	return Decision{
		Allowed:   int(count) <= l.limit,
		Count:     int(count),
		Limit:     l.limit,
		WindowEnd: time.Now().Add(remaining),
	}
}
