package heraldsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/heraldhq/herald/pkg/httpx"
)

const (
	ErrorCodeAuthRequired       = "auth_required"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeDuplicateUser      = "duplicate_user"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeServerError        = "server_error"
)

// APIError is the error shape the herald API returns. It implements
// the error interface so the server can write it and the SDK client
// can surface it unchanged.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "duplicate_user")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrAuthRequired is returned when no bearer token accompanied a
	// request that needs one.
	ErrAuthRequired = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeAuthRequired,
		Description: "authentication required",
	}

	// ErrInvalidToken is returned when a presented token fails
	// verification.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidToken,
		Description: "token is invalid or expired",
	}

	// ErrForbidden is returned when the authenticated user lacks the
	// role a route requires.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "admin access required",
	}

	// ErrDuplicateUser is returned when a signup email is already
	// registered.
	ErrDuplicateUser = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateUser,
		Description: "a user with this email already exists",
	}

	// ErrInvalidCredentials is returned for unknown emails and wrong
	// passwords alike.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid email or password",
	}

	// ErrNotFound is returned when the requested resource does not
	// exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrInvalidRequest is returned when the request body is malformed
	// or missing required fields.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// ParseAPIError decodes an error response body into an *APIError.
// Falls back to a generic error carrying the status code when the body
// is not the expected shape.
func ParseAPIError(statusCode int, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Code == "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        ErrorCodeServerError,
			Description: fmt.Sprintf("unexpected response (status %d)", statusCode),
		}
	}
	apiErr.StatusCode = statusCode
	return &apiErr
}
