package order

import (
	"errors"
	"fmt"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
)

// Patch is a planned change to one order. The store applies it only if the
// stored row still has ExpectedStatus and ExpectedAssignee, so a patch computed
// from a stale snapshot is never written.
type Patch struct {
	OrderID          kernel.UUID
	ExpectedStatus   Status
	ExpectedAssignee *kernel.UUID

	Status     Status
	AssignedTo *kernel.UUID

	// AdminNotes replaces the notes when non-nil.
	AdminNotes *string

	// Payment is set only by payment confirmation.
	Payment *Payment

	UpdatedAt time.Time
}

// Payment records the gateway's confirmation of the service fee.
type Payment struct {
	PaymentID      string
	GatewayOrderID string
	PaidAt         time.Time
}

// Assigns reports whether the patch sets the assignee for the first time.
func (p Patch) Assigns() bool {
	return p.ExpectedAssignee == nil && p.AssignedTo != nil
}

// Validate checks the assignment invariant: an assignee is only ever set
// from nil, never cleared and never replaced.
func (p Patch) Validate() error {
	if err := errors.Join(p.OrderID.Validate(), p.ExpectedStatus.Validate(), p.Status.Validate()); err != nil {
		return err
	}

	if p.ExpectedAssignee != nil && !kernel.OptionalUUIDsEqual(p.ExpectedAssignee, p.AssignedTo) {
		return errs.NewValueIsInvalidErrorWithCause(
			"assignedTo",
			fmt.Errorf("assignee of order %s cannot be changed once set", p.OrderID),
		)
	}

	return nil
}
