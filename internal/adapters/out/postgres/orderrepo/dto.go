// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by name so the queue can be filtered without a lookup table.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid"`
	SchemeID       uuid.UUID       `gorm:"type:uuid"`
	Status         string          `gorm:"type:text"`
	AssignedTo     *uuid.UUID      `gorm:"type:uuid"`
	PaymentAmount  decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentID      *string
	GatewayOrderID *string
	PaidAt         *time.Time
	AdminNotes     string
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		UserID:         o.UserID().Bytes(),
		SchemeID:       o.SchemeID().Bytes(),
		Status:         o.Status().String(),
		AssignedTo:     optionalUUID(o.AssignedTo()),
		PaymentAmount:  o.PaymentAmount().Amount(),
		PaymentID:      optionalString(o.PaymentID()),
		GatewayOrderID: optionalString(o.GatewayOrderID()),
		PaidAt:         o.PaidAt(),
		AdminNotes:     o.AdminNotes(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	schemeID, err := kernel.UUIDFromBytes(dto.SchemeID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedTo *kernel.UUID
	if dto.AssignedTo != nil {
		aID, assigneeErr := kernel.UUIDFromBytes((*dto.AssignedTo)[:])
		if assigneeErr != nil {
			return nil, assigneeErr
		}
		assignedTo = &aID
	}

	amount, err := kernel.NewMoney(dto.PaymentAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		UserID:         userID,
		SchemeID:       schemeID,
		Status:         status,
		AssignedTo:     assignedTo,
		PaymentAmount:  amount,
		PaymentID:      derefString(dto.PaymentID),
		GatewayOrderID: derefString(dto.GatewayOrderID),
		PaidAt:         utc(dto.PaidAt),
		AdminNotes:     dto.AdminNotes,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
	})
}

// patchColumns lists the columns a patch writes.
func patchColumns(p order.Patch) map[string]any {
	columns := map[string]any{
		"status":      p.Status.String(),
		"assigned_to": nullableUUID(p.AssignedTo),
		"updated_at":  p.UpdatedAt,
	}

	if p.AdminNotes != nil {
		columns["admin_notes"] = *p.AdminNotes
	}

	if p.Payment != nil {
		columns["payment_id"] = p.Payment.PaymentID
		columns["gateway_order_id"] = p.Payment.GatewayOrderID
		columns["paid_at"] = p.Payment.PaidAt
	}

	return columns
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func nullableUUID(id *kernel.UUID) any {
	if id == nil {
		return nil
	}
	return id.Bytes()
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
