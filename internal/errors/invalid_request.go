package errors

import "errors"

// InvalidRequestError represents a search request that is rejected before any
// pipeline work is dispatched.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// NewInvalidRequestError creates an InvalidRequestError with the given reason
func NewInvalidRequestError(reason string) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason}
}

// IsInvalidRequestError reports whether err is an InvalidRequestError (even when wrapped).
func IsInvalidRequestError(err error) bool {
	var reqErr *InvalidRequestError
	return errors.As(err, &reqErr)
}
