package commands

import (
	"errors"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand asks to move an order to a new status on behalf
// of an administrator, optionally replacing the admin notes in the same write.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(orderID, order.InProgress, actor, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status
	actor   admin.Actor
	notes   *string

	guard guard.ConstructorGuard
}

func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	actor admin.Actor,
	notes *string,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActor(actor),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	if notes != nil {
		n := *notes
		cmd.notes = &n
	}

	return cmd, nil
}

func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c TransitionOrderStatusCommand) Actor() admin.Actor {
	return c.actor
}

// Notes returns the replacement notes, or nil to leave them untouched.
func (c TransitionOrderStatusCommand) Notes() *string {
	if c.notes == nil {
		return nil
	}
	n := *c.notes
	return &n
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *TransitionOrderStatusCommand) setActor(actor admin.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

// TransitionOrderStatusResult is the order state after an accepted transition.
type TransitionOrderStatusResult struct {
	OrderID    kernel.UUID
	Status     order.Status
	AssignedTo *kernel.UUID
}
