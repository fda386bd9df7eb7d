package mysql

import (
	"context"

	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinLeaveTx(ctx context.Context, leaveID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the leave row up-front to prevent races
		l, err := r.Leaves.GetByLeaveIDForUpdate(ctx, leaveID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:         &UserRepository{db: tx},
		Leaves:        &LeaveRepository{db: tx},
		Notifications: &NotificationRepository{db: tx},
	}
}
