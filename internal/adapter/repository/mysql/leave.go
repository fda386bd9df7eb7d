package mysql

import (
	"context"

	leaveDomain "staff-leave-portal/internal/domain/leave"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository struct{ db *gorm.DB }

func NewLeaveRepository(db *gorm.DB) *LeaveRepository { return &LeaveRepository{db: db} }

func (r *LeaveRepository) Create(ctx context.Context, l *leaveDomain.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeaveRepository) GetByLeaveID(ctx context.Context, leaveID string) (*leaveDomain.LeaveRequest, error) {
	var out leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).Where("leave_id = ?", leaveID).First(&out)
	return &out, res.Error
}

func (r *LeaveRepository) GetByLeaveIDForUpdate(ctx context.Context, leaveID string) (*leaveDomain.LeaveRequest, error) {
	var out leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("leave_id = ?", leaveID).
		First(&out)
	return &out, res.Error
}

// UpdateStatusIf performs the conditional transition write: the update only
// lands when the row is still in `from`, and the caller learns whether it won.
func (r *LeaveRepository) UpdateStatusIf(ctx context.Context, leaveID string, from leaveDomain.Status, updates map[string]any) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&leaveDomain.LeaveRequest{}).
		Where("leave_id = ? AND status = ?", leaveID, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *LeaveRepository) ListByStaff(ctx context.Context, staffID string) ([]leaveDomain.LeaveRequest, error) {
	var out []leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).
		Where("staff_id = ?", staffID).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LeaveRepository) ListByDepartment(ctx context.Context, department string) ([]leaveDomain.LeaveRequest, error) {
	var out []leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LeaveRepository) ListAll(ctx context.Context) ([]leaveDomain.LeaveRequest, error) {
	var out []leaveDomain.LeaveRequest
	res := r.db.WithContext(ctx).
		Order("applied_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
