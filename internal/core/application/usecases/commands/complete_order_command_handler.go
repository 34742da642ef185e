package commands

import (
	"context"
	"log/slog"
	"time"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
	"shasanseva/internal/core/ports"
)

// CompleteOrderCommandHandler completes an order whose proof has been uploaded
// and tells the user about it.
type CompleteOrderCommandHandler struct {
	writer    orderWriter
	lifecycle services.OrderLifecycle
	notifier  ports.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		writer:    orderWriter{uowFactory: uowFactory},
		lifecycle: services.NewOrderLifecycle(),
		notifier:  notifier,
		logger:    logger.With("component", "complete_order"),
		now:       time.Now,
	}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	now := h.now().UTC()
	o, outcome, err := h.writer.write(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.lifecycle.Complete(o, cmd.Actor(), now)
	})
	if err != nil {
		return CompleteOrderResult{}, err
	}

	h.logger.InfoContext(ctx, "order completed",
		"order_id", o.ID().String(),
		"admin_id", cmd.Actor().ID().String(),
	)

	notifyOwner(ctx, h.notifier, h.logger, outcome.Notify, o, now)

	return CompleteOrderResult{OrderID: o.ID(), Status: o.Status()}, nil
}
