package domain

import (
	"context"
	"time"
)

// User is an authenticated account. The portfolio has a single admin user
// seeded at startup, but nothing in the schema enforces that cardinality.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type AuthUsecase interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	CurrentUser(ctx context.Context, id int64) (*User, error)
	ChangePassword(ctx context.Context, id int64, req ChangePasswordRequest) error
}
