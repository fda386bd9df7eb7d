package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// Table: notifications, one row per send attempt. The row is audit only;
// a failed send never reverses the leave transition it reported.
type Notification struct {
	ID             uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	NotificationID string    `gorm:"column:notification_id;type:char(36);not null;uniqueIndex:ux_notifications_id" json:"notificationId"`
	LeaveID        string    `gorm:"column:leave_id;type:char(32);not null;index:idx_notifications_leave" json:"leaveId"`
	Recipient      string    `gorm:"column:recipient;size:255;not null" json:"recipient"`
	LeaveStatus    string    `gorm:"column:leave_status;size:30;not null" json:"leaveStatus"`
	Message        string    `gorm:"column:message;type:text" json:"message"`
	Status         string    `gorm:"column:status;size:10;not null" json:"status"`
	Error          string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Notification) TableName() string { return "notifications" }
