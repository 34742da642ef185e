// Package schemerepo reads and writes the scheme catalogue.
package schemerepo

import (
	"context"
	"errors"
	"time"

	"shasanseva/internal/adapters/out/postgres/pgerrs"
	"shasanseva/internal/core/domain/model/kernel"
	"shasanseva/internal/core/domain/model/scheme"
	"shasanseva/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SchemeDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:text"`
	ServiceFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive   bool
	CreatedAt  time.Time
}

func (SchemeDTO) TableName() string {
	return "schemes"
}

type GormSchemeRepository struct {
	db *gorm.DB
}

func NewGormSchemeRepository(db *gorm.DB) *GormSchemeRepository {
	return &GormSchemeRepository{db: db}
}

// Add stores a scheme. The catalogue is maintained outside the order flow;
// Add exists for seeding.
func (r *GormSchemeRepository) Add(ctx context.Context, s *scheme.Scheme) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := SchemeDTO{
		ID:         s.ID().Bytes(),
		Name:       s.Name(),
		ServiceFee: s.ServiceFee().Amount(),
		IsActive:   s.IsActive(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "scheme")
	}
	return nil
}

func (r *GormSchemeRepository) Get(ctx context.Context, id kernel.UUID) (*scheme.Scheme, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SchemeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("scheme", id.String())
		}
		return nil, err
	}

	fee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return nil, err
	}

	return scheme.RestoreScheme(id, dto.Name, fee, dto.IsActive)
}
