package queries

import (
	"context"
	"time"

	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListAdminQueueQueryHandler reads the admin queue straight from the database,
// bypassing the order aggregate.
//
// Orders are listed oldest first so that paid orders waiting longest are
// picked up first; id breaks ties to keep pages stable.
type ListAdminQueueQueryHandler struct {
	db *gorm.DB
}

func NewListAdminQueueQueryHandler(db *gorm.DB) ListAdminQueueQueryHandler {
	return ListAdminQueueQueryHandler{db: db}
}

type queueRow struct {
	ID            uuid.UUID
	Status        string
	AssignedTo    *uuid.UUID
	PaymentAmount decimal.Decimal
	PaidAt        *time.Time
	AdminNotes    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        uuid.UUID
	UserName      string
	UserPhone     string
	SchemeID      uuid.UUID
	SchemeName    string
}

func (h ListAdminQueueQueryHandler) Handle(
	ctx context.Context,
	query ListAdminQueueQuery,
) (ListAdminQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAdminQueueQueryResponse{}, err
	}

	filter := h.filtered(ctx, query)

	var total int64
	if err := filter.Count(&total).Error; err != nil {
		return ListAdminQueueQueryResponse{}, err
	}

	rows := make([]queueRow, 0, query.Limit())
	err := h.filtered(ctx, query).
		Select(`o.id, o.status, o.assigned_to, o.payment_amount, o.paid_at, o.admin_notes,
			o.created_at, o.updated_at,
			u.id AS user_id, u.name AS user_name, u.phone AS user_phone,
			s.id AS scheme_id, s.name AS scheme_name`).
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN schemes s ON s.id = o.scheme_id").
		Order("o.created_at ASC, o.id ASC").
		Limit(query.Limit()).
		Offset(query.Offset()).
		Scan(&rows).Error
	if err != nil {
		return ListAdminQueueQueryResponse{}, err
	}

	items := make([]AdminQueueItem, 0, len(rows))
	for _, row := range rows {
		item, convErr := row.toItem()
		if convErr != nil {
			return ListAdminQueueQueryResponse{}, convErr
		}
		items = append(items, item)
	}

	return ListAdminQueueQueryResponse{
		Items:      items,
		Total:      total,
		Page:       query.Page(),
		Limit:      query.Limit(),
		TotalPages: TotalPages(total, query.Limit()),
	}, nil
}

func (h ListAdminQueueQueryHandler) filtered(ctx context.Context, query ListAdminQueueQuery) *gorm.DB {
	tx := h.db.WithContext(ctx).Table("orders AS o")

	statuses := query.Statuses()
	if len(statuses) == 0 {
		return tx
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return tx.Where("o.status = ANY(?)", pq.Array(names))
}

func (r queueRow) toItem() (AdminQueueItem, error) {
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return AdminQueueItem{}, err
	}

	amount, err := kernel.NewMoney(r.PaymentAmount)
	if err != nil {
		return AdminQueueItem{}, err
	}

	var assignedTo *kernel.UUID
	if r.AssignedTo != nil {
		id, idErr := kernel.UUIDFromBytes(r.AssignedTo[:])
		if idErr != nil {
			return AdminQueueItem{}, idErr
		}
		assignedTo = &id
	}

	ids := make([]kernel.UUID, 0, 3)
	for _, raw := range []uuid.UUID{r.ID, r.UserID, r.SchemeID} {
		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return AdminQueueItem{}, idErr
		}
		ids = append(ids, id)
	}

	var paidAt *time.Time
	if r.PaidAt != nil {
		t := r.PaidAt.UTC()
		paidAt = &t
	}

	return AdminQueueItem{
		OrderID:       ids[0],
		Status:        status,
		AssignedTo:    assignedTo,
		PaymentAmount: amount,
		PaidAt:        paidAt,
		AdminNotes:    r.AdminNotes,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
		UserID:        ids[1],
		UserName:      r.UserName,
		UserPhone:     r.UserPhone,
		SchemeID:      ids[2],
		SchemeName:    r.SchemeName,
	}, nil
}
