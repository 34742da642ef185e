package commands

import (
	"context"
	"time"

	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
)

type UpdateAdminNotesCommandHandler struct {
	writer    orderWriter
	lifecycle services.OrderLifecycle
	now       func() time.Time
}

func NewUpdateAdminNotesCommandHandler(uowFactory OrderUoWFactory) UpdateAdminNotesCommandHandler {
	return UpdateAdminNotesCommandHandler{
		writer:    orderWriter{uowFactory: uowFactory},
		lifecycle: services.NewOrderLifecycle(),
		now:       time.Now,
	}
}

// Handle stores the notes with the same ownership rules as a status change.
// It returns the order as written.
func (h UpdateAdminNotesCommandHandler) Handle(ctx context.Context, cmd UpdateAdminNotesCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now().UTC()
	o, _, err := h.writer.write(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.lifecycle.Annotate(o, cmd.Actor(), cmd.Notes(), now)
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}
