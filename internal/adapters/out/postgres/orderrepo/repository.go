package orderrepo

import (
	"context"
	"errors"

	"shasanseva/internal/adapters/out/postgres/pgerrs"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
// A missing user or scheme surfaces as errs.ErrObjectNotFound.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "order")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ApplyPatch issues one conditional UPDATE:
//
//	UPDATE orders SET ... WHERE id = ? AND status = ? AND assigned_to IS NULL
//	UPDATE orders SET ... WHERE id = ? AND status = ? AND assigned_to = ?
//
// Under READ COMMITTED a concurrent writer's UPDATE blocks this one until it
// commits; postgres then re-checks the WHERE clause against the new row, so
// only one of two racing pickups matches.
func (r *GormOrderRepository) ApplyPatch(ctx context.Context, patch order.Patch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, err
	}

	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", patch.OrderID.Bytes(), patch.ExpectedStatus.String())

	if patch.ExpectedAssignee == nil {
		query = query.Where("assigned_to IS NULL")
	} else {
		query = query.Where("assigned_to = ?", patch.ExpectedAssignee.Bytes())
	}

	result := query.Updates(patchColumns(patch))
	if result.Error != nil {
		return false, pgerrs.Translate(result.Error, "order")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(patch.OrderID, patch)
	return true, nil
}
