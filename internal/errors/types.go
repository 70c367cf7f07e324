// Package errors provides the error taxonomy for the client SDK.
// Callers branch on the sentinel kinds with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// Local precondition failures, raised before any network I/O.
var (
	// ErrAPIKeyMissing is returned when the client credential is unset.
	ErrAPIKeyMissing = errors.New("api key is not set")

	// ErrInvalidArgument is returned when a required identifier
	// parameter (project token, run token) is empty.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Remote rejection kinds. 400, 401 and 403 are surfaced as distinct
// kinds so callers can branch (e.g. re-prompt for a credential on
// ErrUnauthorized); every other non-success outcome is ErrRequestFailed.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrRequestFailed = errors.New("request failed")
)

// StatusError wraps a non-success HTTP outcome with its status code and
// response body. Unwrap yields the sentinel kind.
type StatusError struct {
	Kind       error
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%v: HTTP %d", e.Kind, e.StatusCode)
	}
	return e.Kind.Error()
}

// Unwrap returns the sentinel kind for error chain compatibility.
func (e *StatusError) Unwrap() error {
	return e.Kind
}
