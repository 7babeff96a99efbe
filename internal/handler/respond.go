package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "wordvault/internal/errors"
	"wordvault/internal/model"
)

// ContextKeyUser is where the bearer middleware stores the authenticated *model.User.
const ContextKeyUser = "current_user"

// MessageResponse is the body of every non-error outcome without data.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error converts a domain error into an echo HTTP error carrying an ErrorResponse.
// Unknown errors become 500 with the cause kept as the internal error for logging.
func Error(err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	if httpErr.StatusCode == http.StatusInternalServerError {
		he.SetInternal(err)
	}
	return he
}

// bindAndValidate binds form or JSON input into req and validates it.
// A failed "required" rule is reported as missing fields.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					return Error(apperrors.ErrMissingFields)
				}
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}
	return nil
}

// currentUser returns the user the bearer middleware authenticated.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextKeyUser).(*model.User)
	if !ok || user == nil {
		return nil, apperrors.ErrTokenMissing
	}
	return user, nil
}
