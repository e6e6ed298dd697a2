package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNoToken is returned before any network I/O when an operation
	// needs a bearer token and the caller holds none. The backend's
	// behavior for an anonymous bearer is unspecified, so the call is
	// refused locally.
	ErrNoToken = errors.New("not logged in: no bearer token held")

	// ErrInvalidFormat marks a 2xx response whose body does not match
	// the expected shape. The text is surfaced to the user verbatim.
	ErrInvalidFormat = errors.New("Invalid response format from API")
)

// APIError is a non-2xx backend response. Message is the backend's JSON
// "error" field when present, otherwise a templated fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %d", e.Status)
}

// ConnectionError wraps a transport failure where no response was
// obtained at all.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "Error connecting to server. Please try again."
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func apiError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("server error: %d", status)
	}
	return &APIError{Status: status, Message: message}
}
