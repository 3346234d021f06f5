package planka

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated indicates no access token is available. It is
// raised before any request is made.
var ErrNotAuthenticated = errors.New("not logged in (run 'planka login')")

// ErrAuthenticationFailed indicates the server rejected the login
// credentials. Login failures wrap this sentinel together with the
// server-provided message.
var ErrAuthenticationFailed = errors.New("authentication failed")

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // Planka error code (e.g. "E_NOT_FOUND"), may be empty
	Message string // server-provided message
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	if e.Code != "" {
		return fmt.Sprintf("server error (%d %s): %s", e.Status, e.Code, msg)
	}
	return fmt.Sprintf("server error (%d): %s", e.Status, msg)
}

// Is matches any APIError with the same status, so callers can compare
// against &APIError{Status: 404}.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// TransportError is a connectivity failure (refused connection, DNS
// failure, timeout, interrupted request). It is distinct from APIError:
// the request never produced a server response.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
