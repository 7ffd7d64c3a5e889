package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/plateforme/services-api/internal/domain/repository"
)

// ErrNotFound is re-exported so handlers depend on the application layer
// only. Out-of-scope and missing records are indistinguishable.
var ErrNotFound = repository.ErrNotFound

// ValidationError carries field-level detail for a structured 4xx response.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f, msg := range e.Details {
		fields = append(fields, f+": "+msg)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, "; ")
}

func validationError(field, msg string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: msg}}
}

// translateRepoErr wraps integrity violations into validation errors; the
// transaction they aborted has already been rolled back by the repository.
func translateRepoErr(err error) error {
	var dup *repository.DuplicateError
	if errors.As(err, &dup) {
		return validationError(dup.Field, dup.Field+" already exists")
	}
	var ref *repository.ReferenceError
	if errors.As(err, &ref) {
		return validationError(ref.Field, "must reference an existing record")
	}
	return err
}
