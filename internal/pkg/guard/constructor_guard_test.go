package guard_test

import (
	"errors"
	"testing"

	"shasanseva/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("ApproveCommand must be created via NewApproveCommand constructor")

	type approveCommand struct {
		notes string
		guard guard.ConstructorGuard
	}

	newApproveCommand := func(notes string) (approveCommand, error) {
		if notes == "" {
			return approveCommand{}, errors.New("notes are required")
		}
		return approveCommand{notes: notes, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd, err := newApproveCommand("looks fine")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errNotConstructed))
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := approveCommand{notes: "bypassed"}

		require.ErrorIs(t, cmd.guard.Validate(errNotConstructed), errNotConstructed)
	})

	t.Run("copies_keep_the_guard", func(t *testing.T) {
		cmd, err := newApproveCommand("copy me")
		require.NoError(t, err)

		copied := cmd

		require.NoError(t, copied.guard.Validate(errNotConstructed))
	})
}
