package user

import (
	"time"

	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidUsername = errs.New("username is required")
	ErrInvalidRole     = errs.New("invalid user role")
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff:
		return Role(s), nil
	default:
		return "", errs.Mark(errs.Newf("unknown role %q", s), ErrInvalidRole)
	}
}

func (r Role) String() string { return string(r) }

type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(username, name, email, passwordHash string, role Role) (*User, error) {
	if username == "" {
		return nil, ErrInvalidUsername
	}
	if _, err := NewRole(string(role)); err != nil {
		return nil, err
	}
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}
