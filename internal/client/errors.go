package client

import (
	"errors"
	"fmt"
)

// ConnectionError means no response reached us: dial failure, timeout,
// or a transport-level break mid-response.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ServerError means the service responded with an error status. Message is
// pulled from the structured error body when present, otherwise the HTTP
// status text.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
}

// retryable decides whether another attempt can possibly succeed.
// Connection-level failures and 5xx responses are retryable; 4xx responses
// are the caller's own bad input and retrying cannot fix them.
func retryable(err error) bool {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr.StatusCode >= 500
	}
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}
