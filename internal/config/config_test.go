package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "DB_DRIVER", "DATABASE_DSN", "MYSQL_DSN", "TOKEN_TTL", "LOG_LEVEL", "LOGIN_RATE_LIMIT", "REDIS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "wordvault.db", cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 20, cfg.LoginRateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.RedisEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("MYSQL_DSN", "user:pw@tcp(db:3306)/words")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOGIN_RATE_LIMIT", "0")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("RESET_DB", "true")

	cfg := Load()

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "user:pw@tcp(db:3306)/words", cfg.DatabaseDSN)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 0, cfg.LoginRateLimit)
	assert.False(t, cfg.RedisEnabled)
	assert.True(t, cfg.ResetDB)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TOKEN_TTL", "-1h")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("REDIS_DB", "two")

	cfg := Load()

	assert.Equal(t, 5*time.Hour, cfg.TokenTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 0, cfg.RedisDB)
}
