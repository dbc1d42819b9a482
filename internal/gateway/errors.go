package gateway

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the session cannot be recovered: the
// refresh cycle failed or the retried request was rejected again. The stored
// tokens have been cleared by the time callers see it.
var ErrUnauthorized = errors.New("unauthorized, please log in again")

// ErrUnreachable wraps transport-level failures where no response was
// received, as opposed to HTTP error responses.
var ErrUnreachable = errors.New("cannot reach server")

// APIError is an HTTP error response from the backend, carrying the
// backend-provided message when one was present in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return e.Message
}
