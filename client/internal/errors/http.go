package errors

import "fmt"

// NewHTTPError builds the error for a response with an unexpected status.
func NewHTTPError(statusCode int, body, detail, operation string) *ClassifiedError {
	return &ClassifiedError{
		StatusCode: statusCode,
		Body:       body,
		Detail:     detail,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError wraps a failure that happened before any response arrived.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
