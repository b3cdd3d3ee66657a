package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Sale struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PartyID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"party_id"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Branch     *string         `gorm:"type:varchar(100)" json:"branch"`
	IsActive   bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
