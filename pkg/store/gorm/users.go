package gorm

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modelbase-go/modelbase/pkg/audit"
	"github.com/modelbase-go/modelbase/pkg/collect"
	"github.com/modelbase-go/modelbase/pkg/model"
	"github.com/modelbase-go/modelbase/pkg/modelbase"
	"github.com/modelbase-go/modelbase/pkg/sqlerr"
	"github.com/modelbase-go/modelbase/pkg/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM.
type UsersStore struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUsersStore creates a new UsersStore.
func NewUsersStore(db *gorm.DB, log zerolog.Logger) *UsersStore {
	return &UsersStore{db: db, log: log.With().Str("store", "users").Logger()}
}

// FetchUser retrieves a user by ID. Returns nil for an unknown ID.
func (s *UsersStore) FetchUser(ctx context.Context, id uuid.UUID) (*store.User, error) {
	var rows []map[string]interface{}
	tx := s.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Limit(1).Find(&rows)
	return collect.Maybe[store.User](rows, tx.Error)
}

// GetUserByEmail retrieves a user by email. An unknown email is
// collect.ErrEmptyResult.
func (s *UsersStore) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	var rows []map[string]interface{}
	tx := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Limit(1).Find(&rows)
	return collect.One[store.User](rows, tx.Error)
}

// ListUsers returns a page of users ordered by creation time.
func (s *UsersStore) ListUsers(ctx context.Context, limit, offset int) ([]store.User, error) {
	var rows []map[string]interface{}
	tx := s.db.WithContext(ctx).
		Model(&model.User{}).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	return collect.Slice[store.User](rows, tx.Error)
}

// CreateUser stores a new user and returns the persisted view.
func (s *UsersStore) CreateUser(ctx context.Context, user store.User) (store.User, error) {
	if err := modelbase.Validate(user); err != nil {
		return store.User{}, err
	}

	// Built field-for-field: the map projection parses timestamps as
	// UTC and would shift zoned values.
	rec := model.User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Balance:      user.Balance,
		BirthDate:    user.BirthDate,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if tx := s.db.WithContext(ctx).Create(&rec); tx.Error != nil {
		return store.User{}, sqlerr.Translate(tx.Error)
	}

	s.log.Debug().Str("user_id", rec.ID.String()).Msg("created user")
	audit.Log(audit.RecordCreatedEvent{Table: model.User{}.TableName(), RecordID: rec.ID.String()})
	return store.User{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Balance:      rec.Balance,
		BirthDate:    rec.BirthDate,
		IsActive:     rec.IsActive,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}, nil
}

// UpdateBalance applies a delta to a user's balance.
func (s *UsersStore) UpdateBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	tx := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("balance", gorm.Expr("balance + ?", delta))
	if err := collect.Discard(nil, tx.Error); err != nil {
		return err
	}
	audit.Log(audit.RecordUpdatedEvent{Table: model.User{}.TableName(), RecordID: id.String(), Field: "balance"})
	return nil
}

// DeleteUser removes a user by ID.
func (s *UsersStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if err := collect.Discard(nil, tx.Error); err != nil {
		return err
	}
	s.log.Debug().Str("user_id", id.String()).Msg("deleted user")
	audit.Log(audit.RecordDeletedEvent{Table: model.User{}.TableName(), RecordID: id.String()})
	return nil
}
