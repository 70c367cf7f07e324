package types

import (
	"fmt"

	apierrors "github.com/scrapedeck/scrapedeck-go/internal/errors"
)

// ValidateAPIKey checks the credential precondition shared by every
// endpoint method. Runs before any network I/O.
func ValidateAPIKey(key string) error {
	if key == "" {
		return apierrors.ErrAPIKeyMissing
	}
	return nil
}

// ValidateToken checks a required identifier parameter. name is the
// parameter's wire-level role ("project token", "run token") and is
// included in the error message.
func ValidateToken(name, token string) error {
	if token == "" {
		return fmt.Errorf("%w: %s must not be empty", apierrors.ErrInvalidArgument, name)
	}
	return nil
}
