// Package exceptions defines the client-facing error kinds used by the
// authentication API. A ClientError carries both the HTTP status and the
// localized message shown to the user; everything that is not a ClientError
// surfaces as a generic server fault at the HTTP boundary.
package exceptions

import "net/http"

// ClientError is an error caused by the client's request. Errors are
// distinguished by status code and message, not by distinct types.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return e.Message
}

// NewInvariantError reports a violated business rule or malformed input (400).
func NewInvariantError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewAuthenticationError reports a credential mismatch (401).
func NewAuthenticationError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusUnauthorized, Message: message}
}

// NewNotFoundError reports a missing resource (404).
func NewNotFoundError(message string) *ClientError {
	return &ClientError{StatusCode: http.StatusNotFound, Message: message}
}
