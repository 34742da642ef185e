package commands

import (
	"errors"
	"strings"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
	"shasanseva/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand carries the payment gateway's checkout result back to
// the order that was paid for.
//
// Example:
//
//	cmd, err := NewConfirmPaymentCommand(orderID, userID, "order_Nx1", "pay_Nx1", signature)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ConfirmPaymentCommand struct {
	orderID        kernel.UUID
	userID         kernel.UUID
	gatewayOrderID string
	paymentID      string
	signature      string

	guard guard.ConstructorGuard
}

func NewConfirmPaymentCommand(
	orderID, userID kernel.UUID,
	gatewayOrderID, paymentID, signature string,
) (ConfirmPaymentCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		userID.Validate(),
		required("gatewayOrderId", gatewayOrderID),
		required("paymentId", paymentID),
		required("signature", signature),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return ConfirmPaymentCommand{
		orderID:        orderID,
		userID:         userID,
		gatewayOrderID: gatewayOrderID,
		paymentID:      paymentID,
		signature:      signature,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmPaymentCommand) UserID() kernel.UUID {
	return c.userID
}

func (c ConfirmPaymentCommand) GatewayOrderID() string {
	return c.gatewayOrderID
}

func (c ConfirmPaymentCommand) PaymentID() string {
	return c.paymentID
}

func (c ConfirmPaymentCommand) Signature() string {
	return c.signature
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
