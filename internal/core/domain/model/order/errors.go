package order

import (
	"errors"
	"fmt"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
)

var (
	ErrTransitionIsNotAllowed        = errors.New("status transition is not allowed")
	ErrOrderIsTerminal               = errors.New("order is in a terminal status")
	ErrPickupIsNotAllowed            = errors.New("only an unassigned PAID order can be picked up")
	ErrOrderIsAlreadyCompleted       = errors.New("order is already completed")
	ErrOrderIsAssignedToAnotherAdmin = errors.New("order is assigned to another admin")
)

// TransitionError is the structured rejection of a requested order change.
// It carries both states and, for ownership violations, the current assignee,
// so transport adapters can render a precise message.
//
// The error matches errs.ErrForbidden for ownership violations and
// errs.ErrValueIsInvalid otherwise; it also matches its Cause.
type TransitionError struct {
	From       Status
	To         Status
	AssignedTo *kernel.UUID
	Cause      error
}

func NewTransitionError(from, to Status, cause error) *TransitionError {
	return &TransitionError{
		From:  from,
		To:    to,
		Cause: cause,
	}
}

func NewAssignedToAnotherAdminError(from, to Status, assignee kernel.UUID) *TransitionError {
	return &TransitionError{
		From:       from,
		To:         to,
		AssignedTo: &assignee,
		Cause:      ErrOrderIsAssignedToAnotherAdmin,
	}
}

func (e *TransitionError) Error() string {
	if e.AssignedTo != nil {
		return fmt.Sprintf("%s: %v (assigned to %s)", e.kind(), e.Cause, e.AssignedTo)
	}
	return fmt.Sprintf("%s: %v: %s -> %s", e.kind(), e.Cause, e.From, e.To)
}

func (e *TransitionError) Unwrap() []error {
	return []error{e.kind(), e.Cause}
}

// IsForbidden reports whether the rejection is an ownership violation.
func (e *TransitionError) IsForbidden() bool {
	return errors.Is(e.Cause, ErrOrderIsAssignedToAnotherAdmin)
}

func (e *TransitionError) kind() error {
	if e.IsForbidden() {
		return errs.ErrForbidden
	}
	return errs.ErrValueIsInvalid
}
