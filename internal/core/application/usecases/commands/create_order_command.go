package commands

import (
	"errors"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a user's request for help applying to a scheme.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, schemeID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s awaits a payment of %s", result.OrderID, result.PaymentAmount)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	userID   kernel.UUID
	schemeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// All three identifiers must be valid.
func NewCreateOrderCommand(orderID, userID, schemeID kernel.UUID) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setSchemeID(schemeID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the user placing the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// SchemeID returns the scheme the user wants to apply to.
func (c CreateOrderCommand) SchemeID() kernel.UUID {
	return c.schemeID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setSchemeID(schemeID kernel.UUID) error {
	if err := schemeID.Validate(); err != nil {
		return err
	}

	c.schemeID = schemeID
	return nil
}

// CreateOrderResult describes the order awaiting payment.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	Status        order.Status
	PaymentAmount kernel.Money
}
