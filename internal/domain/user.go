package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"` // UUID
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PasswordResetToken is a single-use, expiring token mailed to the user
type PasswordResetToken struct {
	Token     string     `json:"token"` // UUID
	UserID    string     `json:"user_id"`
	ExpiresAt time.Time  `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile in one transaction.
	// Unique username/email violations surface as ErrAlreadyExists.
	CreateWithProfile(ctx context.Context, user *User, profile *UserProfile) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

type PasswordResetRepository interface {
	Create(ctx context.Context, token *PasswordResetToken) error
	// GetValid returns the token only if it is unused and unexpired.
	GetValid(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, token string) error
}

// RegisterInput carries the registration form: identity fields plus the
// role choice and optional profile contact fields, created atomically.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,valid_username"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,valid_name"`
	LastName  string `json:"last_name" validate:"required,valid_name"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      Role   `json:"role" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,valid_phone"`
	Location  string `json:"location"`
}

// AuthResult is returned after register/login: the authenticated identity,
// a session token, and the next step the client should route to.
type AuthResult struct {
	User    *User        `json:"user"`
	Profile *UserProfile `json:"profile"`
	Token   string       `json:"token"`
	Next    string       `json:"next,omitempty"`
}

type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	// Password reset flow: request mails a token, validate checks it,
	// reset consumes it and stores the new credential.
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ValidateResetToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
