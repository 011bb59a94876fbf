package model

import (
	"time"

	"github.com/google/uuid"
)

// CollectorProfileModel keeps the cached token balance of a collector.
// The balance is a cache of token_transactions and may be rebuilt at any time.
type CollectorProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName  string    `gorm:"type:varchar(255)"`
	TokenBalance int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CollectorProfileModel) TableName() string {
	return "collector_profiles"
}
