package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
)

// Session is the domain view of a login session.
type Session struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id" validate:"required"`
	Token     modelbase.SecretString `json:"token" validate:"required"`
	ExpiresAt time.Time              `json:"expires_at"`
	CreatedAt time.Time              `json:"created_at"`
}

// SessionsStore abstracts session storage operations.
type SessionsStore interface {
	// FetchSession retrieves a session by token. Returns nil for an
	// unknown or expired token.
	FetchSession(ctx context.Context, token string) (*Session, error)

	// ListUserSessions returns all live sessions for a user, newest
	// first. An empty result is an empty slice.
	ListUserSessions(ctx context.Context, userID uuid.UUID) ([]Session, error)

	// CreateSession stores a new session and returns it.
	CreateSession(ctx context.Context, session Session) (Session, error)

	// PurgeExpired deletes sessions past their expiry.
	PurgeExpired(ctx context.Context) error
}
