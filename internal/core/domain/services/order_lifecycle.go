package services

import (
	"errors"
	"fmt"
	"time"

	"shasanseva/internal/core/domain/model/admin"
	"shasanseva/internal/core/domain/model/notification"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"
)

// Outcome is the decision for an accepted request: the conditional change to
// write and the notification to send once it is written.
type Outcome struct {
	Patch  order.Patch
	Notify notification.Type
}

// OrderLifecycle is a domain service deciding whether an administrator may
// change an order. It is a pure function of the order snapshot, the request and
// the acting administrator; reading and writing the order is left to callers.
//
// Decision order for a status change:
//  1. Terminal orders reject everything (validation)
//  2. Ordinary admins cannot touch an order assigned to someone else (forbidden)
//  3. The requested edge must be in the transition table (validation)
//  4. Ordinary admins may only reach IN_PROGRESS by picking up an unassigned PAID order
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle()
//	outcome, err := lifecycle.Transition(o, order.InProgress, actor, nil, time.Now())
//	if errors.Is(err, errs.ErrForbidden) {
//	    // someone else owns the order
//	}
//	rows, err := repo.ApplyPatch(ctx, outcome.Patch)
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// Transition decides an administrator's request to move o to target, optionally
// replacing the admin notes in the same write.
//
// Checks run in this order: terminal status, ownership (ordinary admins only),
// the transition table, then the pickup rule. A non-owner therefore gets
// FORBIDDEN even for a pair outside the table.
//
// Side effects planned by the outcome:
//   - -> IN_PROGRESS: the actor becomes the assignee if the order is unassigned
//   - -> PROOF_UPLOADED: PROOF_UPLOADED notification
//   - -> COMPLETED: ORDER_COMPLETED notification
//   - -> CANCELLED: nothing
func (l OrderLifecycle) Transition(
	o *order.Order,
	target order.Status,
	actor admin.Actor,
	notes *string,
	now time.Time,
) (Outcome, error) {
	if err := errors.Join(o.Validate(), actor.Validate(), target.Validate()); err != nil {
		return Outcome{}, err
	}

	if err := l.authorizeTransition(o, target, actor); err != nil {
		return Outcome{}, err
	}

	patch := o.PatchTo(target, now)
	if target == order.InProgress && patch.AssignedTo == nil {
		id := actor.ID()
		patch.AssignedTo = &id
	}
	patch.AdminNotes = notes

	return Outcome{Patch: patch, Notify: notificationFor(target)}, nil
}

// Complete decides the "mark complete" convenience operation:
// PROOF_UPLOADED -> COMPLETED, assigning the actor if the order is unassigned.
// An order that is already completed is rejected with ErrOrderIsAlreadyCompleted.
func (l OrderLifecycle) Complete(o *order.Order, actor admin.Actor, now time.Time) (Outcome, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return Outcome{}, err
	}

	if o.Status() == order.Completed {
		return Outcome{}, order.NewTransitionError(order.Completed, order.Completed, order.ErrOrderIsAlreadyCompleted)
	}

	if err := l.authorizeTransition(o, order.Completed, actor); err != nil {
		return Outcome{}, err
	}

	patch := o.PatchTo(order.Completed, now)
	if patch.AssignedTo == nil {
		id := actor.ID()
		patch.AssignedTo = &id
	}

	return Outcome{Patch: patch, Notify: notification.OrderCompleted}, nil
}

// Annotate decides a notes-only update. Notes are editable in every
// non-terminal status by whoever may act on the order.
func (l OrderLifecycle) Annotate(o *order.Order, actor admin.Actor, notes string, now time.Time) (Outcome, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return Outcome{}, err
	}

	status := o.Status()
	if status.IsTerminal() {
		return Outcome{}, order.NewTransitionError(status, status, order.ErrOrderIsTerminal)
	}

	if err := l.authorizeOwnership(o, status, actor); err != nil {
		return Outcome{}, err
	}

	patch := o.PatchTo(status, now)
	patch.AdminNotes = &notes

	return Outcome{Patch: patch, Notify: notification.None}, nil
}

// AuthorizeProof checks that actor may attach a proof to o right now.
func (l OrderLifecycle) AuthorizeProof(o *order.Order, actor admin.Actor) error {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return err
	}

	status := o.Status()
	if !status.AcceptsProofs() {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%s: %w", status, order.ErrProofIsNotAccepted))
	}

	return l.authorizeOwnership(o, status, actor)
}

func (l OrderLifecycle) authorizeTransition(o *order.Order, target order.Status, actor admin.Actor) error {
	from := o.Status()
	if from.IsTerminal() {
		return order.NewTransitionError(from, target, order.ErrOrderIsTerminal)
	}

	if err := l.authorizeOwnership(o, target, actor); err != nil {
		return err
	}

	if err := from.ValidateTransition(target); err != nil {
		return err
	}

	if target == order.InProgress && !actor.IsSuperAdmin() {
		if from != order.Paid || o.AssignedTo() != nil {
			return order.NewTransitionError(from, target, order.ErrPickupIsNotAllowed)
		}
	}

	return nil
}

// authorizeOwnership rejects ordinary admins acting on an order that another
// admin owns. Unassigned orders are open to every admin.
func (l OrderLifecycle) authorizeOwnership(o *order.Order, target order.Status, actor admin.Actor) error {
	if actor.IsSuperAdmin() {
		return nil
	}

	assignee := o.AssignedTo()
	if assignee != nil && !assignee.IsEqual(actor.ID()) {
		return order.NewAssignedToAnotherAdminError(o.Status(), target, *assignee)
	}

	return nil
}

func notificationFor(target order.Status) notification.Type {
	switch target {
	case order.ProofUploaded:
		return notification.ProofUploaded
	case order.Completed:
		return notification.OrderCompleted
	default:
		return notification.None
	}
}
