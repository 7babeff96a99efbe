package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wordvault/internal/service"
)

// UserHandler handles the profile and promotion endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// PromoteRequest names the user to promote.
type PromoteRequest struct {
	Email string `json:"email" form:"email" validate:"required,max=50"`
}

// GetProfile godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 401 {object} errors.ErrorResponse
// @Router /user [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return Error(err)
	}
	return c.JSON(http.StatusOK, h.svc.Profile(user))
}

// Promote godoc
// @Summary Promote a user to admin
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body PromoteRequest true "User to promote"
// @Success 202 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /promote [post]
func (h *UserHandler) Promote(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return Error(err)
	}

	var req PromoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	outcome, err := h.svc.Promote(c.Request().Context(), user, req.Email)
	if err != nil {
		return Error(err)
	}

	switch outcome {
	case service.OutcomeNotFound:
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "user does not exist"})
	case service.OutcomeAlreadyAdmin:
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "user is already admin"})
	default:
		return c.JSON(http.StatusAccepted, MessageResponse{Message: "user successfully promoted to admin"})
	}
}
