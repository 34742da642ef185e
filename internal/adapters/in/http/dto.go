package http

import (
	"time"

	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	SchemeID uuid.UUID `json:"schemeId"`
}

type CreateOrderResponse struct {
	OrderID       uuid.UUID `json:"orderId"`
	Status        string    `json:"status"`
	PaymentAmount string    `json:"paymentAmount"`
}

type ConfirmPaymentRequest struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	PaymentID      string `json:"paymentId"`
	Signature      string `json:"signature"`
}

type OrderStatusResponse struct {
	OrderID uuid.UUID `json:"orderId"`
	Status  string    `json:"status"`
}

type TransitionOrderStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes,omitempty"`
}

type TransitionOrderStatusResponse struct {
	OrderID    uuid.UUID  `json:"orderId"`
	Status     string     `json:"status"`
	AssignedTo *uuid.UUID `json:"assignedTo"`
}

type UpdateAdminNotesRequest struct {
	Notes string `json:"notes"`
}

type AdminNotesResponse struct {
	OrderID    uuid.UUID `json:"orderId"`
	AdminNotes string    `json:"adminNotes"`
}

type AddProofRequest struct {
	ProofType   string `json:"proofType"`
	FileKey     string `json:"fileKey"`
	FileName    string `json:"fileName"`
	Description string `json:"description,omitempty"`
}

type ProofResponse struct {
	ProofID     uuid.UUID `json:"proofId"`
	OrderID     uuid.UUID `json:"orderId"`
	ProofType   string    `json:"proofType"`
	FileKey     string    `json:"fileKey"`
	FileName    string    `json:"fileName"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AdminQueuePage struct {
	Items      []AdminQueueItem `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

type AdminQueueItem struct {
	OrderID       uuid.UUID   `json:"orderId"`
	Status        string      `json:"status"`
	AssignedTo    *uuid.UUID  `json:"assignedTo"`
	PaymentAmount string      `json:"paymentAmount"`
	PaidAt        *time.Time  `json:"paidAt"`
	AdminNotes    string      `json:"adminNotes"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	User          QueueUser   `json:"user"`
	Scheme        QueueScheme `json:"scheme"`
}

type QueueUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

type QueueScheme struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
