package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type MovementKind string

const (
	MovementInbound    MovementKind = "INBOUND"
	MovementOutbound   MovementKind = "OUTBOUND"
	MovementAdjustment MovementKind = "ADJUSTMENT"
)

func ParseMovementKind(s string) (MovementKind, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(MovementInbound):
		return MovementInbound, true
	case string(MovementOutbound):
		return MovementOutbound, true
	case string(MovementAdjustment):
		return MovementAdjustment, true
	default:
		return "", false
	}
}

// Delta は在庫カウンタへ適用する符号付きの変化量。
// INBOUND/OUTBOUND は符号をkindが決める。ADJUSTMENTは量自体が符号を持つ
func (k MovementKind) Delta(quantity int64) int64 {
	switch k {
	case MovementInbound:
		return quantity
	case MovementOutbound:
		return -quantity
	default:
		return quantity
	}
}

// 追記専用の監査レコード。StockLevelの変更と同一トランザクションで必ず1行作る
type StockMovement struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID  uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id"`
	Kind       MovementKind `gorm:"type:varchar(20);not null" json:"kind"`
	OccurredAt time.Time    `gorm:"not null;index" json:"occurred_at"`
	PartyID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"party_id"`
	Quantity   int64        `gorm:"not null" json:"quantity"`
	Note       *string      `gorm:"type:text" json:"note"`
	IsActive   bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
