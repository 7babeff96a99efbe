package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "wordvault/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"wordvault/internal/auth"
	"wordvault/internal/cache"
	"wordvault/internal/config"
	"wordvault/internal/db"
	"wordvault/internal/handler"
	"wordvault/internal/logging"
	"wordvault/internal/metrics"
	"wordvault/internal/ratelimit"
	"wordvault/internal/repository"
	"wordvault/internal/router"
	"wordvault/internal/service"
)

// @title Wordvault API
// @version 1.0
// @description Token-authenticated dictionary with admin-gated mutation.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger := logging.New("wordvault", cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("database init", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	if cfg.ResetDB {
		logger.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logger.Warn("failed to drop tables (may not exist)", "error", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		logger.Error("auto-migrate", "error", err)
		os.Exit(1)
	}

	var cacheClient *cache.Client
	if cfg.RedisEnabled {
		cacheClient = cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cacheClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := cacheClient.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, continuing without cache and rate limiting", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	dictionaryRepo := repository.NewDictionaryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, auth.WithTTL(cfg.TokenTTL))

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, logger)
	userService := service.NewUserService(userRepo, cacheClient, logger)
	dictionaryService := service.NewDictionaryService(dictionaryRepo, cacheClient, logger)
	guard := service.NewGuard(jwtService, userService)

	limiter := ratelimit.New(cacheClient, cfg.LoginRateLimit, time.Minute, logger)
	recorder := metrics.New()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	dictionaryHandler := handler.NewDictionaryHandler(dictionaryService)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		logger,
		guard,
		limiter,
		recorder,
		authHandler,
		userHandler,
		dictionaryHandler,
	)

	logger.Info("swagger documentation available", "url", swaggerURL(cfg.SwaggerHost, cfg.ServerPort))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("server starting", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server start", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
}

// swaggerURL accepts SWAGGER_HOST with or without a scheme.
func swaggerURL(host, port string) string {
	switch {
	case host == "":
		return "http://localhost:" + port + "/swagger/index.html"
	case strings.HasPrefix(host, "http://"), strings.HasPrefix(host, "https://"):
		return host + "/swagger/index.html"
	default:
		return "http://" + host + "/swagger/index.html"
	}
}
