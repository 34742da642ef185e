package commands

import (
	"errors"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/guard"
)

var ErrUpdateAdminNotesCommandIsNotConstructed = errors.New(
	"UpdateAdminNotesCommand must be created via NewUpdateAdminNotesCommand constructor",
)

// UpdateAdminNotesCommand replaces the internal notes of an order without
// changing its status.
type UpdateAdminNotesCommand struct {
	orderID kernel.UUID
	actor   admin.Actor
	notes   string

	guard guard.ConstructorGuard
}

func NewUpdateAdminNotesCommand(orderID kernel.UUID, actor admin.Actor, notes string) (UpdateAdminNotesCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return UpdateAdminNotesCommand{}, err
	}

	return UpdateAdminNotesCommand{
		orderID: orderID,
		actor:   actor,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAdminNotesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAdminNotesCommandIsNotConstructed)
}

func (c UpdateAdminNotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateAdminNotesCommand) Actor() admin.Actor {
	return c.actor
}

func (c UpdateAdminNotesCommand) Notes() string {
	return c.notes
}
