package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type PartyProfile string

const (
	ProfileSeller   PartyProfile = "SELLER"
	ProfileCustomer PartyProfile = "CUSTOMER"
	ProfileSupplier PartyProfile = "SUPPLIER"
)

// 境界で一度だけパースする。以降は閉じた型として扱う
func ParsePartyProfile(s string) (PartyProfile, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ProfileSeller):
		return ProfileSeller, true
	case string(ProfileCustomer):
		return ProfileCustomer, true
	case string(ProfileSupplier):
		return ProfileSupplier, true
	default:
		return "", false
	}
}

type Party struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string       `gorm:"type:varchar(255);not null" json:"name"`
	Document  string       `gorm:"type:varchar(50);not null;index" json:"document"`
	Profile   PartyProfile `gorm:"type:varchar(20);not null;index" json:"profile"`
	Email     *string      `gorm:"type:varchar(255)" json:"email"`
	Phone     *string      `gorm:"type:varchar(20)" json:"phone"`
	IsActive  bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
