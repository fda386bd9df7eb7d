package usermock

import (
	"context"

	domain "staff-leave-portal/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, u *domain.User) error
	GetByUIDFn     func(ctx context.Context, uid string) (*domain.User, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	GetPrincipalFn func(ctx context.Context) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUID(ctx context.Context, uid string) (*domain.User, error) {
	if m.GetByUIDFn != nil {
		return m.GetByUIDFn(ctx, uid)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPrincipal(ctx context.Context) (*domain.User, error) {
	if m.GetPrincipalFn != nil {
		return m.GetPrincipalFn(ctx)
	}
	return nil, context.Canceled
}
