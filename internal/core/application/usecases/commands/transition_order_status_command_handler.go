package commands

import (
	"context"
	"log/slog"
	"time"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
	"shasanseva/internal/core/ports"
)

// TransitionOrderStatusCommandHandler moves an order through its lifecycle on
// behalf of an administrator.
//
// The decision is made by services.OrderLifecycle against a fresh snapshot and
// written with a single conditional update. If another administrator changed
// the order in between, the handler re-reads it and decides again, so the loser
// of a pickup race gets FORBIDDEN rather than a silent overwrite.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(uowFactory, notifier, logger)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrForbidden):
//	    // assigned to another admin
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    // transition not allowed
//	}
type TransitionOrderStatusCommandHandler struct {
	writer    orderWriter
	lifecycle services.OrderLifecycle
	notifier  ports.Notifier
	logger    *slog.Logger
	now       func() time.Time
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		writer:    orderWriter{uowFactory: uowFactory},
		lifecycle: services.NewOrderLifecycle(),
		notifier:  notifier,
		logger:    logger.With("component", "transition_order_status"),
		now:       time.Now,
	}
}

func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	now := h.now().UTC()
	o, outcome, err := h.writer.write(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.lifecycle.Transition(o, cmd.Status(), cmd.Actor(), cmd.Notes(), now)
	})
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	h.logger.InfoContext(ctx, "order status changed",
		"order_id", o.ID().String(),
		"from", outcome.Patch.ExpectedStatus.String(),
		"to", o.Status().String(),
		"admin_id", cmd.Actor().ID().String(),
	)

	notifyOwner(ctx, h.notifier, h.logger, outcome.Notify, o, now)

	return TransitionOrderStatusResult{
		OrderID:    o.ID(),
		Status:     o.Status(),
		AssignedTo: o.AssignedTo(),
	}, nil
}
