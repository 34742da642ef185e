// Package notificationrepo stores user notifications in the notifications
// table, from where the user-facing apps read them.
package notificationrepo

import (
	"context"
	"time"

	"shasanseva/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID    uuid.UUID `gorm:"type:uuid"`
	RecipientType  string
	Type           string
	Title          string
	Message        string
	RelatedOrderID *uuid.UUID `gorm:"type:uuid"`
	IsRead         bool
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements ports.Notifier by inserting a row per notification.
type GormNotifier struct {
	db *gorm.DB
}

func NewGormNotifier(db *gorm.DB) *GormNotifier {
	return &GormNotifier{db: db}
}

func (n *GormNotifier) Enqueue(ctx context.Context, msg notification.Notification) error {
	relatedOrderID := msg.RelatedOrderID.Bytes()
	dto := NotificationDTO{
		ID:             msg.ID.Bytes(),
		RecipientID:    msg.RecipientID.Bytes(),
		RecipientType:  msg.RecipientType,
		Type:           string(msg.Type),
		Title:          msg.Title,
		Message:        msg.Message,
		RelatedOrderID: &relatedOrderID,
		CreatedAt:      msg.CreatedAt,
	}

	return n.db.WithContext(ctx).Create(&dto).Error
}

// PurgeRead deletes notifications that were read and created before cutoff.
// It returns the number of deleted rows.
func (n *GormNotifier) PurgeRead(ctx context.Context, cutoff time.Time) (int64, error) {
	result := n.db.WithContext(ctx).
		Where("is_read AND created_at < ?", cutoff).
		Delete(&NotificationDTO{})
	return result.RowsAffected, result.Error
}
