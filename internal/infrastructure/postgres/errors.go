package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/plateforme/services-api/internal/domain/repository"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// translateErr maps pgx errors onto the repository error taxonomy so
// services never see driver-level error types.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &repository.DuplicateError{Field: constraintField(pgErr.ConstraintName)}
		case codeForeignKeyViolation:
			return &repository.ReferenceError{Field: constraintField(pgErr.ConstraintName)}
		}
	}
	return err
}

// constraintField guesses the offending field from a constraint name such
// as users_email_key or reservations_client_id_fkey.
func constraintField(name string) string {
	for _, f := range []string{"username", "email", "client_id", "provider_id", "user_id"} {
		if strings.Contains(name, f) {
			return f
		}
	}
	return "field"
}
