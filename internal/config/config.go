package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	DatabaseDSN string
	ResetDB     bool

	RedisEnabled bool
	RedisAddr    string
	RedisDB      int
	RedisPass    string

	JWTSecret      string
	TokenTTL       time.Duration
	LoginRateLimit int

	LogLevel    slog.Level
	SwaggerHost string

	AdminEmail    string
	AdminPassword string
	SeedWords     string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	dsn := getEnv("DATABASE_DSN", os.Getenv("MYSQL_DSN"))
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	if dsn == "" && driver == "sqlite" {
		dsn = "wordvault.db"
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		DBDriver:       driver,
		DatabaseDSN:    dsn,
		ResetDB:        getEnvBool("RESET_DB", false),
		RedisEnabled:   getEnvBool("REDIS_ENABLED", true),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		TokenTTL:       getEnvDuration("TOKEN_TTL", 5*time.Hour),
		LoginRateLimit: getEnvInt("LOGIN_RATE_LIMIT", 20),
		LogLevel:       getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		SeedWords:      os.Getenv("SEED_WORDS"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		return def
	}
	return level
}
