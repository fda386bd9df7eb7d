package uow

import (
	"context"

	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/notification"
	"staff-leave-portal/internal/domain/user"
)

type Repos struct {
	Users         user.Repository
	Leaves        leave.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the leave row first, then pass it in
	WithinLeaveTx(ctx context.Context, leaveID string, fn func(r Repos, l *leave.LeaveRequest) error) error
}
