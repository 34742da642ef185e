// Package ports defines the contracts between the order domain and the
// infrastructure that stores orders, delivers notifications and checks payments.
package ports

import (
	"context"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ApplyPatch writes patch as a single conditional update guarded by the
	// patch's expected status and expected assignee.
	//
	// Returns applied == false, with a nil error, when the stored order no longer
	// matches the guard: another writer got there first and the caller should
	// re-read the order and decide again.
	ApplyPatch(ctx context.Context, patch order.Patch) (applied bool, err error)
}
