package model

import (
	"time"

	"github.com/google/uuid"
)

// 商品ごとに1行。更新はLedger経由の原子的な加減算のみ
type StockLevel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"product_id"`
	PartyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"party_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
