package util

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError standardizes application errors carried to the HTTP boundary.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewValidationError reports a 400 caused by invalid input or a failed
// cross-entity check.
func NewValidationError(message string) error {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewAuthorizationError reports a 403 for a role that may not perform the
// requested action.
func NewAuthorizationError(message string) error {
	return &APIError{StatusCode: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports a 404 for a missing resource.
func NewNotFoundError(resource string) error {
	return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewConflictError reports a 409 for uniqueness or idempotency-window
// violations.
func NewConflictError(message string) error {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

// NewInternalError wraps an unexpected failure into a 500.
func NewInternalError(err error) error {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: "Database error", Err: err}
}

// NewConfigurationError reports a server-side misconfiguration, such as a
// table without a registered ID prefix.
func NewConfigurationError(message string) error {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}

// ToAPIError converts any error into an APIError, defaulting to a 500.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal Server Error",
		Err:        err,
	}
}
