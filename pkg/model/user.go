package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modelbase-go/modelbase/pkg/modelbase"
)

// User is a service account row.
type User struct {
	ID           uuid.UUID              `gorm:"column:id;primaryKey" json:"id"`
	Email        string                 `gorm:"column:email;not null" json:"email"`
	PasswordHash modelbase.SecretString `gorm:"column:password_hash;not null" json:"password_hash"`
	Balance      decimal.Decimal        `gorm:"column:balance;type:numeric(12,2)" json:"balance"`
	BirthDate    *modelbase.Date        `gorm:"column:birth_date;type:date" json:"birth_date"`
	IsActive     bool                   `gorm:"column:is_active" json:"is_active"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
