package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when required input is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrTokenMissing is returned when a protected request carries no bearer token.
	ErrTokenMissing = errors.New("token is missing")
	// ErrInvalidToken is returned when a token fails verification or names an unknown user.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrNotAuthorized is returned when an authenticated user lacks admin rights.
	ErrNotAuthorized = errors.New("not authorized to perform this task")
	// ErrUserNotFound is returned when no user has the given email.
	ErrUserNotFound = errors.New("could not verify")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong email/password")
	// ErrRateLimited is returned when a client exceeds the credential endpoint limit.
	ErrRateLimited = errors.New("too many attempts, try again later")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Wrapped errors are matched with errors.Is.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingFields.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrTokenMissing):
		return NewHTTPError(http.StatusUnauthorized, ErrTokenMissing.Error(), "TOKEN_MISSING")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidToken.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrNotAuthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrNotAuthorized.Error(), "NOT_AUTHORIZED")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusForbidden, ErrWrongPassword.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrRateLimited):
		return NewHTTPError(http.StatusTooManyRequests, ErrRateLimited.Error(), "RATE_LIMITED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
