package mysql

import (
	"context"

	userDomain "staff-leave-portal/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("uid = ?", uid).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetPrincipal(ctx context.Context) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Where("role = ?", userDomain.RolePrincipal).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}
