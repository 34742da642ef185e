package pgerrs_test

import (
	"errors"
	"fmt"
	"testing"

	"shasanseva/internal/adapters/out/postgres/pgerrs"
	"shasanseva/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := pgerrs.Translate(fmt.Errorf("insert: %w", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "proofs_file_key_key",
		}), "fileKey")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "proofs_file_key_key")
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := pgerrs.Translate(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "orders_user_id_fkey",
		}, "order")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "orders_user_id_fkey")
	})

	t.Run("other errors pass through", func(t *testing.T) {
		original := errors.New("connection reset")
		require.Same(t, original, pgerrs.Translate(original, "order"))

		check := &pgconn.PgError{Code: "23514"}
		require.Same(t, check, pgerrs.Translate(check, "order"))
	})
}
