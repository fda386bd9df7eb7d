package leave

import "context"

type Repository interface {
	Create(ctx context.Context, l *LeaveRequest) error
	GetByLeaveID(ctx context.Context, leaveID string) (*LeaveRequest, error)
	// Locking read for use inside a transaction (SELECT ... FOR UPDATE)
	GetByLeaveIDForUpdate(ctx context.Context, leaveID string) (*LeaveRequest, error)
	// Conditional write: applies updates only while status still equals
	// from. Returns false when a concurrent decision already won.
	UpdateStatusIf(ctx context.Context, leaveID string, from Status, updates map[string]any) (bool, error)

	// All listings are ordered applied_date DESC, id DESC.
	ListByStaff(ctx context.Context, staffID string) ([]LeaveRequest, error)
	ListByDepartment(ctx context.Context, department string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}
