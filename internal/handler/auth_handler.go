package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wordvault/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=50,email"`
	Password string `json:"password" form:"password" validate:"required,maxbytes=72"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,max=50"`
	Password string `json:"password" form:"password" validate:"required,maxbytes=72"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 201 {object} MessageResponse
// @Success 202 {object} MessageResponse "user already exists"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return Error(err)
	}

	if outcome == service.OutcomeConflict {
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "user already exists"})
	}
	return c.JSON(http.StatusCreated, MessageResponse{Message: "account created successfully"})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 201 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return Error(err)
	}

	return c.JSON(http.StatusCreated, TokenResponse{Token: token})
}
