package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByLeaveID(ctx context.Context, leaveID string) ([]Notification, error)
}
