package errors

import "fmt"

// Classify maps a non-success HTTP status to its error kind.
// 400, 401 and 403 get dedicated kinds; everything else, including a
// missing or unparsable status line (code 0), is ErrRequestFailed.
func Classify(statusCode int, body string) *StatusError {
	return &StatusError{
		Kind:       kindForStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
}

func kindForStatus(statusCode int) error {
	switch statusCode {
	case 400:
		return ErrBadRequest
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	default:
		return ErrRequestFailed
	}
}

// NewTransportError wraps a network-level failure as ErrRequestFailed,
// keeping the underlying error on the chain.
func NewTransportError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRequestFailed, operation, err)
}
