package commands_test

import (
	"testing"

	"shasanseva/internal/core/application/usecases/commands"
	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAdminNotesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should store notes without changing status", func(t *testing.T) {
		a1 := newAdmin(t, admin.Regular)
		o := newOrderIn(t, order.InProgress, &a1)
		store := newMemoryStore(o)
		cmd, err := commands.NewUpdateAdminNotesCommand(o.ID(), a1, "user sent income certificate")
		require.NoError(t, err)

		handler := commands.NewUpdateAdminNotesCommandHandler(store.Orders())
		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "user sent income certificate", updated.AdminNotes())
		stored := store.snapshot(o.ID())
		assert.Equal(t, order.InProgress, stored.Status)
		assert.Equal(t, "user sent income certificate", stored.AdminNotes)
	})

	t.Run("should let super admin annotate any order", func(t *testing.T) {
		owner := newAdmin(t, admin.Regular)
		o := newOrderIn(t, order.ProofUploaded, &owner)
		store := newMemoryStore(o)
		cmd, err := commands.NewUpdateAdminNotesCommand(o.ID(), newAdmin(t, admin.Super), "escalated")
		require.NoError(t, err)

		_, err = commands.NewUpdateAdminNotesCommandHandler(store.Orders()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "escalated", store.snapshot(o.ID()).AdminNotes)
	})

	t.Run("should forbid another ordinary admin", func(t *testing.T) {
		owner := newAdmin(t, admin.Regular)
		o := newOrderIn(t, order.InProgress, &owner)
		store := newMemoryStore(o)
		cmd, err := commands.NewUpdateAdminNotesCommand(o.ID(), newAdmin(t, admin.Regular), "hijack")
		require.NoError(t, err)

		_, err = commands.NewUpdateAdminNotesCommandHandler(store.Orders()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Empty(t, store.snapshot(o.ID()).AdminNotes)
	})

	t.Run("should reject terminal orders", func(t *testing.T) {
		a1 := newAdmin(t, admin.Regular)
		o := newOrderIn(t, order.Cancelled, &a1)
		store := newMemoryStore(o)
		cmd, err := commands.NewUpdateAdminNotesCommand(o.ID(), a1, "too late")
		require.NoError(t, err)

		_, err = commands.NewUpdateAdminNotesCommandHandler(store.Orders()).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrOrderIsTerminal)
	})
}
