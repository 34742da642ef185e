package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/notification"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/core/domain/services"
	"shasanseva/internal/core/ports"
)

// maxWriteAttempts bounds how many times a lost conditional write is re-read
// and decided again before giving up.
const maxWriteAttempts = 3

// ErrConcurrentModification is returned when the order kept changing under a
// request for maxWriteAttempts rounds.
var ErrConcurrentModification = errors.New("order was modified concurrently, try again")

// decideFunc turns the current order snapshot into the change to write.
type decideFunc func(o *order.Order) (services.Outcome, error)

// orderWriter runs the read, decide, conditional-write loop shared by every
// command that changes an order.
type orderWriter struct {
	uowFactory OrderUoWFactory
}

// write loads the order, asks decide for a patch and applies it with a
// conditional update. When the update matches no row the order changed since it
// was read: the loop re-reads it so decide can report what actually happened
// (someone else picked it up, it was cancelled, ...).
//
// On success the returned order reflects the patch.
func (w orderWriter) write(ctx context.Context, orderID kernel.UUID, decide decideFunc) (*order.Order, services.Outcome, error) {
	for range maxWriteAttempts {
		o, outcome, applied, err := w.attempt(ctx, orderID, decide)
		if err != nil {
			return nil, services.Outcome{}, err
		}
		if applied {
			return o, outcome, nil
		}
	}

	return nil, services.Outcome{}, ErrConcurrentModification
}

func (w orderWriter) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	decide decideFunc,
) (*order.Order, services.Outcome, bool, error) {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, services.Outcome{}, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, services.Outcome{}, false, err
	}

	outcome, err := decide(o)
	if err != nil {
		return nil, services.Outcome{}, false, err
	}

	applied, err := orderRepo.ApplyPatch(ctx, outcome.Patch)
	if err != nil || !applied {
		return nil, services.Outcome{}, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, services.Outcome{}, false, err
	}

	if err = o.Apply(outcome.Patch); err != nil {
		return nil, services.Outcome{}, false, err
	}

	return o, outcome, true, nil
}

// notifyOwner enqueues a notification for the user who placed o. It runs after
// the transition is committed; failures are logged and never returned.
func notifyOwner(
	ctx context.Context,
	notifier ports.Notifier,
	logger *slog.Logger,
	t notification.Type,
	o *order.Order,
	now time.Time,
) {
	if t == notification.None {
		return
	}

	n, err := notification.NewOrderNotification(t, o.UserID(), o.ID(), now)
	if err == nil {
		err = notifier.Enqueue(ctx, n)
	}

	if err != nil {
		logger.WarnContext(ctx, "failed to enqueue notification",
			"order_id", o.ID().String(),
			"type", string(t),
			"error", err,
		)
	}
}
