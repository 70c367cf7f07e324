package scrapedeck

import (
	apierrors "github.com/scrapedeck/scrapedeck-go/internal/errors"
)

// Re-export the SDK error kinds so callers compare against a single
// symbol with errors.Is.
var (
	// ErrAPIKeyMissing: the credential was unset at call time. No I/O
	// was attempted.
	ErrAPIKeyMissing = apierrors.ErrAPIKeyMissing

	// ErrInvalidArgument: a required project or run token was empty.
	// No I/O was attempted.
	ErrInvalidArgument = apierrors.ErrInvalidArgument

	// Classified remote rejections (HTTP 400 / 401 / 403).
	ErrBadRequest   = apierrors.ErrBadRequest
	ErrUnauthorized = apierrors.ErrUnauthorized
	ErrForbidden    = apierrors.ErrForbidden

	// ErrRequestFailed: any other transport or non-success outcome.
	ErrRequestFailed = apierrors.ErrRequestFailed
)

// StatusError carries the HTTP status code and response body of a
// remote rejection; Unwrap yields one of the kinds above.
type StatusError = apierrors.StatusError
