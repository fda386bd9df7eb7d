package mysql

import (
	"context"

	notifDomain "staff-leave-portal/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByLeaveID(ctx context.Context, leaveID string) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("leave_id = ?", leaveID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
