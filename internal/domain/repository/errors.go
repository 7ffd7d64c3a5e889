package repository

import "errors"

// ErrNotFound covers both genuinely missing rows and rows outside the
// caller's scope; the two are indistinguishable on purpose.
var ErrNotFound = errors.New("record not found")

// DuplicateError reports a uniqueness violation on Field.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return e.Field + " already exists"
}

// ReferenceError reports a broken reference (reservation naming a
// client or provider profile that does not exist).
type ReferenceError struct {
	Field string
}

func (e *ReferenceError) Error() string {
	return e.Field + " does not reference an existing record"
}
