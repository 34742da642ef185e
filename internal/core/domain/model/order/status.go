package order

import (
	"fmt"
	"slices"

	"shasanseva/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	PENDING_PAYMENT ──(payment)──> PAID ──> IN_PROGRESS ──> PROOF_UPLOADED ──> COMPLETED
//	                                 │           │                │
//	                                 └───────────┴────────────────┴──> CANCELLED
//
// Only the edges leaving PAID, IN_PROGRESS and PROOF_UPLOADED may be requested
// by an administrator. PENDING_PAYMENT -> PAID belongs to payment confirmation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// PendingPayment is the initial status; the user has not paid the service fee yet.
	PendingPayment

	// Paid means the fee was confirmed and the order waits in the admin queue.
	Paid

	// InProgress means an administrator picked the order up and owns it.
	InProgress

	// ProofUploaded means the application was submitted and evidence attached.
	ProofUploaded

	// Completed is a terminal state.
	Completed

	// Cancelled is a terminal state.
	Cancelled
)

var statusNames = map[Status]string{
	PendingPayment: "PENDING_PAYMENT",
	Paid:           "PAID",
	InProgress:     "IN_PROGRESS",
	ProofUploaded:  "PROOF_UPLOADED",
	Completed:      "COMPLETED",
	Cancelled:      "CANCELLED",
}

// adminTransitions is the directed graph of transitions an administrator may request.
var adminTransitions = map[Status][]Status{
	Paid:          {InProgress, Cancelled},
	InProgress:    {ProofUploaded, Cancelled},
	ProofUploaded: {Completed, Cancelled},
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{PendingPayment, Paid, InProgress, ProofUploaded, Completed, Cancelled}
}

// ParseStatus maps the persisted/API form (e.g. "IN_PROGRESS") to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted/API name of the status, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether an administrator may move an order from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(adminTransitions[s], target)
}

// ValidateTransition returns a TransitionError when s -> target is not an
// administrator edge of the table.
func (s Status) ValidateTransition(target Status) error {
	if s.IsTerminal() {
		return NewTransitionError(s, target, ErrOrderIsTerminal)
	}
	if !s.CanTransitionTo(target) {
		return NewTransitionError(s, target, ErrTransitionIsNotAllowed)
	}
	return nil
}

// ValidateAssignee checks that the presence of an assignee matches the status.
//
// Business Rules:
//   - PENDING_PAYMENT and PAID orders are never assigned
//   - IN_PROGRESS, PROOF_UPLOADED and COMPLETED orders are always assigned
//   - CANCELLED orders may or may not be assigned
func (s Status) ValidateAssignee(assigned bool) error {
	switch s {
	case PendingPayment, Paid:
		if assigned {
			return errs.NewValueIsInvalidErrorWithCause(
				"assignedTo",
				fmt.Errorf("%s is not a valid status to have an assignee", s),
			)
		}
	case InProgress, ProofUploaded, Completed:
		if !assigned {
			return errs.NewValueIsInvalidErrorWithCause(
				"assignedTo",
				fmt.Errorf("%s is not a valid status to have no assignee", s),
			)
		}
	case Cancelled, Unknown:
	}
	return nil
}
