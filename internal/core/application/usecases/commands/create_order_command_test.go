package commands_test

import (
	"testing"

	"shasanseva/internal/core/application/usecases/commands"
	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id, userID, schemeID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, userID, schemeID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, schemeID, cmd.SchemeID())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestNewTransitionOrderStatusCommand(t *testing.T) {
	actor := newAdmin(t, admin.Regular)

	t.Run("should copy notes", func(t *testing.T) {
		notes := "first"
		cmd, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Cancelled, actor, &notes)
		require.NoError(t, err)

		notes = "changed"
		assert.Equal(t, "first", *cmd.Notes())
	})

	t.Run("should leave notes nil when absent", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Cancelled, actor, nil)
		require.NoError(t, err)
		assert.Nil(t, cmd.Notes())
	})

	t.Run("should reject unknown status and unconstructed actor", func(t *testing.T) {
		_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), order.Unknown, admin.Actor{}, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, admin.ErrActorIsNotConstructed)
	})
}

func TestNewAddProofCommand(t *testing.T) {
	actor := newAdmin(t, admin.Regular)

	cmd, err := commands.NewAddProofCommand(kernel.NewUUID(), actor, order.ProofScreenshot, "k/1.png", "1.png", "portal")
	require.NoError(t, err)
	assert.Equal(t, order.ProofScreenshot, cmd.ProofType())
	assert.Equal(t, "k/1.png", cmd.FileKey())
	assert.Equal(t, "1.png", cmd.FileName())
	assert.Equal(t, "portal", cmd.Description())

	_, err = commands.NewAddProofCommand(kernel.NewUUID(), actor, order.ProofType("PDF"), "", "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
