// Package proofrepo stores proofs attached to orders.
package proofrepo

import (
	"context"
	"time"

	"shasanseva/internal/adapters/out/postgres/pgerrs"
	"shasanseva/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProofDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid"`
	UploadedBy  uuid.UUID `gorm:"type:uuid"`
	ProofType   string
	FileKey     string
	FileName    string
	Description string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
}

func (ProofDTO) TableName() string {
	return "proofs"
}

type GormProofRepository struct {
	db *gorm.DB
}

func NewGormProofRepository(db *gorm.DB) *GormProofRepository {
	return &GormProofRepository{db: db}
}

// Add inserts the proof. Reusing a file key fails with errs.ErrValueIsInvalid.
func (r *GormProofRepository) Add(ctx context.Context, proof order.Proof) error {
	dto := ProofDTO{
		ID:          proof.ID.Bytes(),
		OrderID:     proof.OrderID.Bytes(),
		UploadedBy:  proof.UploadedBy.Bytes(),
		ProofType:   string(proof.Type),
		FileKey:     proof.FileKey,
		FileName:    proof.FileName,
		Description: proof.Description,
		CreatedAt:   proof.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "proof")
	}
	return nil
}
