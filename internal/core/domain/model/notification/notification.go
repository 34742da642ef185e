// Package notification models the user-facing messages emitted when an order
// reaches a milestone.
package notification

import (
	"errors"
	"fmt"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/pkg/errs"
)

// Type identifies the milestone a notification announces.
type Type string

const (
	// None means the transition fires no notification.
	None Type = ""

	ProofUploaded  Type = "PROOF_UPLOADED"
	OrderCompleted Type = "ORDER_COMPLETED"
)

// RecipientUser is the only recipient kind the order engine notifies.
const RecipientUser = "USER"

var ErrTypeIsUnsupported = errors.New("notification type is not supported")

// Notification is a message for one recipient about one order.
type Notification struct {
	ID             kernel.UUID
	RecipientID    kernel.UUID
	RecipientType  string
	Type           Type
	Title          string
	Message        string
	RelatedOrderID kernel.UUID
	CreatedAt      time.Time
}

// NewOrderNotification builds the user notification for an order milestone.
func NewOrderNotification(t Type, userID, orderID kernel.UUID, now time.Time) (Notification, error) {
	title, message, err := t.text()
	if err != nil {
		return Notification{}, err
	}

	if err = errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return Notification{}, err
	}

	return Notification{
		ID:             kernel.NewUUID(),
		RecipientID:    userID,
		RecipientType:  RecipientUser,
		Type:           t,
		Title:          title,
		Message:        message,
		RelatedOrderID: orderID,
		CreatedAt:      now,
	}, nil
}

func (t Type) text() (string, string, error) {
	switch t {
	case ProofUploaded:
		return "Application submitted",
			"Proof of your scheme application has been uploaded. You can review it in your order details.",
			nil
	case OrderCompleted:
		return "Order completed",
			"Your scheme application order has been completed.",
			nil
	case None:
	}
	return "", "", errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q: %w", string(t), ErrTypeIsUnsupported))
}
