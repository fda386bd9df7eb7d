package auth

import (
	"time"

	"staff-leave-portal/internal/domain/user"
)

type RegisterInput struct {
	Email      string
	Password   string
	FullName   string
	Department string
	Role       user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

// UserDTO is the public view of an account; it never carries the hash.
type UserDTO struct {
	UID        string    `json:"uid"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Department string    `json:"department"`
	Role       user.Role `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		UID:        u.UID,
		Email:      u.Email,
		FullName:   u.FullName,
		Department: u.Department,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}
