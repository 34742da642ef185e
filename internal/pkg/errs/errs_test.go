package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("multiline ids are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "abc\ndef")

		assert.Equal(t, "object not found: abc def", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("schemeId")

		assert.Equal(t, "schemeId", err.ParamName)
		assert.Equal(t, "value is required: schemeId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("schemeId", cause)

		assert.Equal(t, "value is required: schemeId (cause: missing required field)", err.Error())
	})
}

func TestForbiddenError(t *testing.T) {
	t.Run("NewForbiddenError", func(t *testing.T) {
		err := errs.NewForbiddenError("order is assigned to another admin")

		assert.Equal(t, "action is forbidden: order is assigned to another admin", err.Error())
		assert.Equal(t, errs.ErrForbidden, err.Unwrap())
	})

	t.Run("NewForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("not the owner")
		err := errs.NewForbiddenErrorWithCause("confirm payment", cause)

		assert.Equal(t, "action is forbidden: confirm payment (cause: not the owner)", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	testCases := []struct {
		err      error
		sentinel error
	}{
		{errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound},
		{errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{errs.NewValueIsRequiredError("id"), errs.ErrValueIsRequired},
		{errs.NewForbiddenError("nope"), errs.ErrForbidden},
	}

	for _, tc := range testCases {
		wrapped := fmt.Errorf("handler: %w", tc.err)
		require.ErrorIs(t, wrapped, tc.sentinel)
	}
}

func TestErrorsMatchTheirCause(t *testing.T) {
	reason := errors.New("scheme is closed")

	testCases := []error{
		errs.NewObjectNotFoundErrorWithCause("schemeId", "1", reason),
		errs.NewValueIsInvalidErrorWithCause("scheme", fmt.Errorf("pm-kisan: %w", reason)),
		errs.NewValueIsRequiredErrorWithCause("scheme", reason),
		errs.NewForbiddenErrorWithCause("apply", reason),
	}

	for _, err := range testCases {
		require.ErrorIs(t, err, reason)
	}

	require.NotErrorIs(t, errs.NewValueIsInvalidError("scheme"), reason)
}
