// Package errors turns failed API calls into errors that match the SDK
// sentinels.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized matches 401 and 403 responses.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")
)

// ClassifiedError describes a non-success response or a transport failure.
type ClassifiedError struct {
	StatusCode int    // HTTP status code (0 for transport failures)
	Body       string // Raw response body, truncated
	Detail     string // Message from the backend's error body, if any
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", e.Underlying, e.Detail)
	}
	return e.Underlying.Error()
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// Is maps status codes onto the package sentinels.
func (e *ClassifiedError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == 401 || e.StatusCode == 403
	case ErrNotFound:
		return e.StatusCode == 404
	}
	return false
}
