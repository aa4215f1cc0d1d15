package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when neither token nor nickname/password authenticate.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden is returned when a caller acts on a resource it does not own.
	ErrForbidden = errors.New("operation not permitted")
	// ErrUserNotFound is returned when no user matches the given nickname or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrPublicityNotFound is returned when no posting matches the given id.
	ErrPublicityNotFound = errors.New("publicity not found")
	// ErrDuplicateUser is returned when a nickname or email is already taken.
	ErrDuplicateUser = errors.New("nickname or email already in use")
	// ErrInvalidEmail, ErrInvalidName and ErrInvalidNickname are returned when
	// a field fails its syntax rule.
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidName     = errors.New("invalid name or fullname")
	ErrInvalidNickname = errors.New("invalid nickname")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Distinct categories get
// distinct status codes: 400 validation, 401 authentication, 403 ownership,
// 404 missing record, 409 uniqueness conflict.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrInvalidName):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_NAME")
	case errors.Is(err, ErrInvalidNickname):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_NICKNAME")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrPublicityNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PUBLICITY_NOT_FOUND")
	case errors.Is(err, ErrDuplicateUser):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_USER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
