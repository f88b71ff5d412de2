package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
)

// User is the domain view of an account.
type User struct {
	ID           uuid.UUID              `json:"id"`
	Email        string                 `json:"email" validate:"required,email"`
	PasswordHash modelbase.SecretString `json:"password_hash" validate:"required"`
	Balance      decimal.Decimal        `json:"balance"`
	BirthDate    *modelbase.Date        `json:"birth_date"`
	IsActive     bool                   `json:"is_active"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// UsersStore abstracts account storage operations.
//
// Fetch methods follow the collect shapes: FetchUser is optional and
// returns nil for an unknown ID, GetUserByEmail is required and
// returns collect.ErrEmptyResult for an unknown email, ListUsers
// returns an empty slice when nothing matches.
type UsersStore interface {
	FetchUser(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]User, error)
	CreateUser(ctx context.Context, user User) (User, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
