package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
)

// Session is a login session row.
type Session struct {
	ID        uuid.UUID              `gorm:"column:id;primaryKey" json:"id"`
	UserID    uuid.UUID              `gorm:"column:user_id;not null" json:"user_id"`
	Token     modelbase.SecretString `gorm:"column:token;not null" json:"token"`
	ExpiresAt time.Time              `gorm:"column:expires_at;not null" json:"expires_at"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// IsExpired returns true if the session's expiry has passed.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
