package uowmock

import (
	"context"
	"errors"

	"staff-leave-portal/internal/domain/leave"
	"staff-leave-portal/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinLeaveTxFn func(ctx context.Context, leaveID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinLeaveTx(fn func(context.Context, string, func(uow.Repos, *leave.LeaveRequest) error) error) *UoW {
	m.WithinLeaveTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinLeaveTx(ctx context.Context, leaveID string, fn func(r uow.Repos, l *leave.LeaveRequest) error) error {
	if m.WithinLeaveTxFn != nil {
		return m.WithinLeaveTxFn(ctx, leaveID, fn)
	}
	return errUnimplemented
}
