package commands

import (
	"errors"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is the "mark complete" shortcut for an order whose proof
// has been uploaded.
type CompleteOrderCommand struct {
	orderID kernel.UUID
	actor   admin.Actor

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.UUID, actor admin.Actor) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return CompleteOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteOrderCommand) Actor() admin.Actor {
	return c.actor
}

type CompleteOrderResult struct {
	OrderID kernel.UUID
	Status  order.Status
}
