package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"staff-leave-portal/internal/domain/user"
	"staff-leave-portal/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	users     user.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUsecase(users user.Repository, jwtSecret string, tokenTTL time.Duration) *Usecase {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Usecase{users: users, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// Register creates a staff or HOD account. Principal accounts are
// provisioned out of band, never through this endpoint.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if in.Role != user.RoleStaff && in.Role != user.RoleHOD {
		return nil, user.ErrRoleNotAllowed
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, user.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &user.User{
		UID:          id.NewID32(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(in.FullName),
		Department:   strings.TrimSpace(in.Department),
		Role:         in.Role,
	}
	if err := u.users.Create(ctx, acc); err != nil {
		return nil, err
	}
	return toDTO(acc), nil
}

// Login verifies credentials and returns a signed token plus the account.
// Unknown email and wrong password report the same error.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (string, *UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	acc, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, user.ErrNotFound) {
			return "", nil, user.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return "", nil, user.ErrInvalidCredentials
	}

	token, err := u.signToken(acc)
	if err != nil {
		return "", nil, err
	}
	return token, toDTO(acc), nil
}

// Me resolves the account behind a verified token subject.
func (u *Usecase) Me(ctx context.Context, uid string) (*UserDTO, error) {
	acc, err := u.users.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return toDTO(acc), nil
}

func (u *Usecase) signToken(acc *user.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        acc.UID,
		"role":       string(acc.Role),
		"department": acc.Department,
		"name":       acc.FullName,
		"email":      acc.Email,
		"iat":        now.Unix(),
		"exp":        now.Add(u.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
}
