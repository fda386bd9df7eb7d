package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleNotAllowed     = errors.New("role not allowed")
)

type Role string

const (
	RoleStaff     Role = "staff"
	RoleHOD       Role = "hod"
	RolePrincipal Role = "principal"
)

// Table: users
type User struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	UID          string    `gorm:"column:uid;type:char(32);not null;uniqueIndex:ux_users_uid" json:"uid"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100;not null" json:"-"`
	FullName     string    `gorm:"column:full_name;size:120;not null" json:"fullName"`
	Department   string    `gorm:"column:department;size:120;not null" json:"department"`
	Role         Role      `gorm:"column:role;size:20;not null" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }
