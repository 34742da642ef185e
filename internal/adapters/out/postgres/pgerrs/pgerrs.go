// Package pgerrs turns postgres constraint violations into the errs taxonomy.
package pgerrs

import (
	"errors"

	"shasanseva/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Translate maps a unique violation to errs.ErrValueIsInvalid and a foreign key
// violation to errs.ErrObjectNotFound, naming the violated constraint. Any
// other error is returned unchanged.
func Translate(err error, param string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(param, errors.New("already exists: "+pgErr.ConstraintName))
	case foreignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(param, pgErr.ConstraintName, err)
	default:
		return err
	}
}
