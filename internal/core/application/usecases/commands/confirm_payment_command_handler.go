package commands

import (
	"context"
	"log/slog"
	"time"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
	"shasanseva/internal/core/ports"
	"shasanseva/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler moves a PENDING_PAYMENT order to PAID once the
// gateway signature checks out. It is the only way an order becomes PAID.
type ConfirmPaymentCommandHandler struct {
	writer   orderWriter
	verifier ports.PaymentVerifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewConfirmPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	verifier ports.PaymentVerifier,
	logger *slog.Logger,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		writer:   orderWriter{uowFactory: uowFactory},
		verifier: verifier,
		logger:   logger.With("component", "confirm_payment"),
		now:      time.Now,
	}
}

func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.verifier.Verify(cmd.GatewayOrderID(), cmd.PaymentID(), cmd.Signature()); err != nil {
		h.logger.WarnContext(ctx, "payment signature rejected",
			"order_id", cmd.OrderID().String(),
			"gateway_order_id", cmd.GatewayOrderID(),
		)
		return nil, err
	}

	now := h.now().UTC()
	o, _, err := h.writer.write(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		if !o.UserID().IsEqual(cmd.UserID()) {
			return services.Outcome{}, errs.NewForbiddenError("order belongs to another user")
		}

		patch, err := o.ConfirmPayment(cmd.PaymentID(), cmd.GatewayOrderID(), now)
		if err != nil {
			return services.Outcome{}, err
		}
		return services.Outcome{Patch: patch}, nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "order paid",
		"order_id", o.ID().String(),
		"payment_id", cmd.PaymentID(),
	)

	return o, nil
}
