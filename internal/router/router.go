package router

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "wordvault/internal/errors"
	"wordvault/internal/handler"
	"wordvault/internal/metrics"
	"wordvault/internal/model"
	"wordvault/internal/ratelimit"
	"wordvault/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	logger *slog.Logger,
	guard *service.Guard,
	limiter *ratelimit.Limiter,
	recorder *metrics.Recorder,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	dictionaryHandler *handler.DictionaryHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(recorder.Middleware())
	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/login", authHandler.Login, rateLimit(limiter, recorder, "login"))
	e.POST("/signup", authHandler.Signup, rateLimit(limiter, recorder, "signup"))

	// Secured routes (require a bearer token naming an existing user).
	// Middleware is attached per route: a prefix-less group would also guard unknown paths.
	bearer := bearerAuth(guard)
	e.GET("/user", userHandler.GetProfile, bearer)
	e.GET("/search/:word", dictionaryHandler.Search, bearer)

	// Admin routes
	e.POST("/add", dictionaryHandler.AddWord, bearer, requireAdmin)
	e.POST("/remove", dictionaryHandler.RemoveWord, bearer, requireAdmin)
	e.POST("/promote", userHandler.Promote, bearer, requireAdmin)
}

// guardError marks failures that came from the Guard rather than from header extraction.
type guardError struct {
	err error
}

func (e *guardError) Error() string { return e.err.Error() }
func (e *guardError) Unwrap() error { return e.err }

// bearerAuth extracts "Authorization: Bearer <token>" and authenticates it through the guard.
// A missing or non-bearer header is reported as a missing token.
func bearerAuth(guard *service.Guard) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.ContextKeyUser,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			user, err := guard.RequireToken(c.Request().Context(), token)
			if err != nil {
				return nil, &guardError{err: err}
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var ge *guardError
			if errors.As(err, &ge) {
				return handler.Error(ge.err)
			}
			return handler.Error(apperrors.ErrTokenMissing)
		},
	})
}

// requireAdmin must run after bearerAuth.
func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := c.Get(handler.ContextKeyUser).(*model.User)
		if user == nil {
			return handler.Error(apperrors.ErrTokenMissing)
		}
		if err := service.RequireAdmin(user); err != nil {
			return handler.Error(err)
		}
		return next(c)
	}
}

func rateLimit(limiter *ratelimit.Limiter, recorder *metrics.Recorder, route string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := limiter.Allow(c.Request().Context(), route+":"+c.RealIP())
			if decision.Limit > 0 {
				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			}
			if !decision.Allowed {
				recorder.RateLimited(route)
				return handler.Error(apperrors.ErrRateLimited)
			}
			return next(c)
		}
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				var he *echo.HTTPError
				if errors.As(v.Error, &he) && he.Internal != nil {
					attrs = append(attrs, slog.String("error", he.Internal.Error()))
				} else {
					attrs = append(attrs, slog.String("error", v.Error.Error()))
				}
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that also understands "maxbytes=N",
// a byte-length limit (bcrypt only looks at the first 72 bytes of a password).
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
