package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a question requested by ID does not exist.
	ErrNotFound = errors.New("question not found")

	// ErrReferentialViolation is returned when an answer names a question
	// that does not exist.
	ErrReferentialViolation = errors.New("answer references unknown question")
)

// ErrStoreUnavailable indicates the database could not be reached or a
// statement against it failed. It is never retried.
type ErrStoreUnavailable struct {
	Op  string
	Err error
}

func (e *ErrStoreUnavailable) Error() string {
	return fmt.Sprintf("store unavailable (%s): %v", e.Op, e.Err)
}

func (e *ErrStoreUnavailable) Unwrap() error { return e.Err }

func unavailable(op string, err error) error {
	return &ErrStoreUnavailable{Op: op, Err: err}
}

// IsUnavailable reports whether err was caused by the backing store.
func IsUnavailable(err error) bool {
	var target *ErrStoreUnavailable
	return errors.As(err, &target)
}
