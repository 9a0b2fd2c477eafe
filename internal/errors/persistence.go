package errors

import (
	"errors"
	"fmt"
)

// PersistenceError represents a failed write to the catalog store. This is the
// one error class the pipeline surfaces to its caller; a failed batch write
// must never be reported as success.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("catalog store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError wraps a store error with the failing operation name
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsPersistenceError reports whether err is a PersistenceError (even when wrapped).
func IsPersistenceError(err error) bool {
	var perr *PersistenceError
	return errors.As(err, &perr)
}
