package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUID(ctx context.Context, uid string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Exactly one principal account is expected per deployment; the
	// provisioning command uses this to stay idempotent.
	GetPrincipal(ctx context.Context) (*User, error)
}
