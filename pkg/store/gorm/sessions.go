package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/modelbase-go/modelbase/pkg/audit"
	"github.com/modelbase-go/modelbase/pkg/collect"
	"github.com/modelbase-go/modelbase/pkg/model"
	"github.com/modelbase-go/modelbase/pkg/modelbase"
	"github.com/modelbase-go/modelbase/pkg/sqlerr"
	"github.com/modelbase-go/modelbase/pkg/store"
)

// Ensure SessionsStore implements store.SessionsStore
var _ store.SessionsStore = (*SessionsStore)(nil)

// SessionsStore implements store.SessionsStore using GORM.
type SessionsStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewSessionsStore creates a new SessionsStore.
func NewSessionsStore(db *gorm.DB, log zerolog.Logger) *SessionsStore {
	return &SessionsStore{db: db, log: log.With().Str("store", "sessions").Logger()}
}

// FetchSession retrieves a live session by token. Unknown and expired
// tokens both come back nil.
func (s *SessionsStore) FetchSession(ctx context.Context, token string) (*store.Session, error) {
	var rows []map[string]interface{}
	tx := s.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Limit(1).
		Find(&rows)
	return collect.Maybe[store.Session](rows, tx.Error)
}

// ListUserSessions returns all live sessions for a user, newest first.
func (s *SessionsStore) ListUserSessions(ctx context.Context, userID uuid.UUID) ([]store.Session, error) {
	var rows []map[string]interface{}
	tx := s.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("created_at desc").
		Find(&rows)
	return collect.Slice[store.Session](rows, tx.Error)
}

// CreateSession stores a new session and returns the persisted view.
func (s *SessionsStore) CreateSession(ctx context.Context, session store.Session) (store.Session, error) {
	if err := modelbase.Validate(session); err != nil {
		return store.Session{}, err
	}

	// Built field-for-field: the map projection parses timestamps as
	// UTC and would shift zoned values.
	rec := model.Session{
		ID:        session.ID,
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if tx := s.db.WithContext(ctx).Create(&rec); tx.Error != nil {
		return store.Session{}, sqlerr.Translate(tx.Error)
	}

	s.log.Debug().
		Str("session_id", rec.ID.String()).
		Str("user_id", rec.UserID.String()).
		Msg("created session")
	audit.Log(audit.RecordCreatedEvent{Table: model.Session{}.TableName(), RecordID: rec.ID.String()})
	return store.Session{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Token:     rec.Token,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// PurgeExpired deletes sessions past their expiry.
func (s *SessionsStore) PurgeExpired(ctx context.Context) error {
	tx := s.db.WithContext(ctx).Where("expires_at <= ?", time.Now()).Delete(&model.Session{})
	if err := collect.Discard(nil, tx.Error); err != nil {
		return err
	}
	if tx.RowsAffected > 0 {
		s.log.Debug().Int64("purged", tx.RowsAffected).Msg("purged expired sessions")
		audit.Log(audit.PurgeEvent{Table: model.Session{}.TableName(), Count: tx.RowsAffected})
	}
	return nil
}
