package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrPatchDoesNotMatch is returned by Apply when the patch was computed from a different snapshot.
	ErrPatchDoesNotMatch = errors.New("patch does not match the order state")
)

// Order is one citizen's request for assistance with one scheme. It is the
// aggregate root of the lifecycle: created unpaid, paid through the payment
// gateway, then picked up and progressed by an administrator until it reaches
// a terminal status. Orders are never deleted.
//
// Order does not change itself when an operation is decided. Operations return
// a Patch that the store applies conditionally; Apply then brings the
// in-memory aggregate in line with the stored row.
type Order struct {
	id       kernel.UUID
	userID   kernel.UUID
	schemeID kernel.UUID

	status     Status
	assignedTo *kernel.UUID

	// paymentAmount is the scheme fee captured at creation
	paymentAmount  kernel.Money
	paymentID      string
	gatewayOrderID string
	paidAt         *time.Time

	adminNotes string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Snapshot is the full persisted state of an order, used to restore it.
type Snapshot struct {
	ID             kernel.UUID
	UserID         kernel.UUID
	SchemeID       kernel.UUID
	Status         Status
	AssignedTo     *kernel.UUID
	PaymentAmount  kernel.Money
	PaymentID      string
	GatewayOrderID string
	PaidAt         *time.Time
	AdminNotes     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOrder creates an unpaid order for a scheme, charging the given fee.
func NewOrder(id, userID, schemeID kernel.UUID, paymentAmount kernel.Money, now time.Time) (*Order, error) {
	return RestoreOrder(Snapshot{
		ID:            id,
		UserID:        userID,
		SchemeID:      schemeID,
		Status:        PendingPayment,
		PaymentAmount: paymentAmount,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// RestoreOrder rebuilds an order from persistence and checks that the stored
// state is consistent.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.UserID.Validate(),
		s.SchemeID.Validate(),
		s.Status.Validate(),
		s.PaymentAmount.Validate(),
		validateAssignee(s.Status, s.AssignedTo),
		validatePayment(s.Status, s.PaymentID, s.PaidAt),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:             s.ID,
		userID:         s.UserID,
		schemeID:       s.SchemeID,
		status:         s.Status,
		assignedTo:     copyID(s.AssignedTo),
		paymentAmount:  s.PaymentAmount,
		paymentID:      s.PaymentID,
		gatewayOrderID: s.GatewayOrderID,
		paidAt:         copyTime(s.PaidAt),
		adminNotes:     s.AdminNotes,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) SchemeID() kernel.UUID {
	return o.schemeID
}

func (o *Order) Status() Status {
	return o.status
}

// AssignedTo returns the owning administrator, or nil while unassigned.
func (o *Order) AssignedTo() *kernel.UUID {
	return copyID(o.assignedTo)
}

func (o *Order) PaymentAmount() kernel.Money {
	return o.paymentAmount
}

func (o *Order) PaymentID() string {
	return o.paymentID
}

func (o *Order) GatewayOrderID() string {
	return o.gatewayOrderID
}

func (o *Order) PaidAt() *time.Time {
	return copyTime(o.paidAt)
}

func (o *Order) AdminNotes() string {
	return o.adminNotes
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Snapshot returns the full state of the order for persistence adapters.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		UserID:         o.userID,
		SchemeID:       o.schemeID,
		Status:         o.status,
		AssignedTo:     copyID(o.assignedTo),
		PaymentAmount:  o.paymentAmount,
		PaymentID:      o.paymentID,
		GatewayOrderID: o.gatewayOrderID,
		PaidAt:         copyTime(o.paidAt),
		AdminNotes:     o.adminNotes,
		CreatedAt:      o.createdAt,
		UpdatedAt:      o.updatedAt,
	}
}

// PatchTo returns a patch that moves the order to target and keeps everything
// else, conditioned on the order's current status and assignee.
func (o *Order) PatchTo(target Status, now time.Time) Patch {
	return Patch{
		OrderID:          o.id,
		ExpectedStatus:   o.status,
		ExpectedAssignee: copyID(o.assignedTo),
		Status:           target,
		AssignedTo:       copyID(o.assignedTo),
		UpdatedAt:        now,
	}
}

// ConfirmPayment plans the PENDING_PAYMENT -> PAID move after the payment
// gateway confirmed the fee. It does not assign the order.
func (o *Order) ConfirmPayment(paymentID, gatewayOrderID string, now time.Time) (Patch, error) {
	if err := o.Validate(); err != nil {
		return Patch{}, err
	}

	if o.status != PendingPayment {
		return Patch{}, NewTransitionError(o.status, Paid, ErrTransitionIsNotAllowed)
	}

	var idErrs []error
	if strings.TrimSpace(paymentID) == "" {
		idErrs = append(idErrs, errs.NewValueIsRequiredError("paymentId"))
	}
	if strings.TrimSpace(gatewayOrderID) == "" {
		idErrs = append(idErrs, errs.NewValueIsRequiredError("gatewayOrderId"))
	}
	if err := errors.Join(idErrs...); err != nil {
		return Patch{}, err
	}

	patch := o.PatchTo(Paid, now)
	patch.Payment = &Payment{
		PaymentID:      paymentID,
		GatewayOrderID: gatewayOrderID,
		PaidAt:         now,
	}
	return patch, nil
}

// Apply brings the aggregate in line with a patch the store has accepted.
func (o *Order) Apply(p Patch) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !p.OrderID.IsEqual(o.id) || p.ExpectedStatus != o.status ||
		!kernel.OptionalUUIDsEqual(p.ExpectedAssignee, o.assignedTo) {
		return ErrPatchDoesNotMatch
	}

	if err := p.Validate(); err != nil {
		return err
	}

	o.status = p.Status
	o.assignedTo = copyID(p.AssignedTo)
	if p.AdminNotes != nil {
		o.adminNotes = *p.AdminNotes
	}
	if p.Payment != nil {
		o.paymentID = p.Payment.PaymentID
		o.gatewayOrderID = p.Payment.GatewayOrderID
		paidAt := p.Payment.PaidAt
		o.paidAt = &paidAt
	}
	o.updatedAt = p.UpdatedAt
	return nil
}

func validateAssignee(status Status, assignee *kernel.UUID) error {
	if assignee != nil {
		if err := assignee.Validate(); err != nil {
			return err
		}
	}
	return status.ValidateAssignee(assignee != nil)
}

func validatePayment(status Status, paymentID string, paidAt *time.Time) error {
	paid := paidAt != nil && paymentID != ""
	if status == PendingPayment && paid {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%s order cannot carry a payment", status))
	}
	if status != PendingPayment && status != Unknown && !paid {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%s order must carry a payment", status))
	}
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
