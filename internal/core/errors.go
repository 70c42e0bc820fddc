package core

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by the record store when an id does not resolve.
// Callers treat it as a boolean/empty result, not a failure.
var ErrNotFound = errors.New("memory entry not found")

// StoreError wraps record store failures: connectivity loss or constraint
// violations such as a duplicate vector id.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// IndexError wraps vector index failures. During consolidation it is
// surfaced without rolling back the already committed row; during
// retrieval and maintenance it is logged and swallowed.
type IndexError struct {
	Op  string
	Err error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %s: %v", e.Op, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func NewIndexError(op string, err error) *IndexError {
	return &IndexError{Op: op, Err: err}
}
