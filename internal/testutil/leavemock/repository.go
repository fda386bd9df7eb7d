package leavemock

import (
	"context"

	domain "staff-leave-portal/internal/domain/leave"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the function fields a test needs.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.LeaveRequest) error
	GetByLeaveIDFn          func(ctx context.Context, leaveID string) (*domain.LeaveRequest, error)
	GetByLeaveIDForUpdateFn func(ctx context.Context, leaveID string) (*domain.LeaveRequest, error)
	UpdateStatusIfFn        func(ctx context.Context, leaveID string, from domain.Status, updates map[string]any) (bool, error)
	ListByStaffFn           func(ctx context.Context, staffID string) ([]domain.LeaveRequest, error)
	ListByDepartmentFn      func(ctx context.Context, department string) ([]domain.LeaveRequest, error)
	ListAllFn               func(ctx context.Context) ([]domain.LeaveRequest, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.LeaveRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLeaveID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	if m.GetByLeaveIDFn != nil {
		return m.GetByLeaveIDFn(ctx, leaveID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLeaveIDForUpdate(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	if m.GetByLeaveIDForUpdateFn != nil {
		return m.GetByLeaveIDForUpdateFn(ctx, leaveID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatusIf(ctx context.Context, leaveID string, from domain.Status, updates map[string]any) (bool, error) {
	if m.UpdateStatusIfFn != nil {
		return m.UpdateStatusIfFn(ctx, leaveID, from, updates)
	}
	return true, nil
}

func (m *Repo) ListByStaff(ctx context.Context, staffID string) ([]domain.LeaveRequest, error) {
	if m.ListByStaffFn != nil {
		return m.ListByStaffFn(ctx, staffID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByDepartment(ctx context.Context, department string) ([]domain.LeaveRequest, error) {
	if m.ListByDepartmentFn != nil {
		return m.ListByDepartmentFn(ctx, department)
	}
	return nil, context.Canceled
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.LeaveRequest, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, context.Canceled
}
