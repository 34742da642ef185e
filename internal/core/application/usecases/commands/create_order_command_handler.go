package commands

import (
	"context"
	"time"

	"shasanseva/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The order starts in PENDING_PAYMENT with the scheme's current service fee as
// its payment amount; later fee changes do not affect it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), userID, schemeID)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory CatalogUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a CatalogUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CatalogUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
// Fails with errs.ErrObjectNotFound for an unknown scheme and
// errs.ErrValueIsInvalid for an inactive one.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.SchemeRepository().Get(ctx, cmd.SchemeID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = s.ValidateOrderable(); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), s.ID(), s.ServiceFee(), h.now().UTC())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:       o.ID(),
		Status:        o.Status(),
		PaymentAmount: o.PaymentAmount(),
	}, nil
}
