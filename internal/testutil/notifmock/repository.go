package notifmock

import (
	"context"

	domain "staff-leave-portal/internal/domain/notification"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, n *domain.Notification) error
	ListByLeaveIDFn func(ctx context.Context, leaveID string) ([]domain.Notification, error)

	// Created collects every row passed to Create when CreateFn is nil,
	// so tests can assert on the audit trail without wiring a function.
	Created []domain.Notification
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	m.Created = append(m.Created, *n)
	return nil
}

func (m *Repo) ListByLeaveID(ctx context.Context, leaveID string) ([]domain.Notification, error) {
	if m.ListByLeaveIDFn != nil {
		return m.ListByLeaveIDFn(ctx, leaveID)
	}
	return nil, context.Canceled
}
