package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TokenTransactionModel is one append-only ledger row.
// idx_token_tx_collector_pickup_source enforces at most one award per pickup and source;
// milestone rows carry no pickup and are kept unique by idx_token_tx_collector_milestone.
type TokenTransactionModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CollectorID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_token_tx_collector_created,priority:1;uniqueIndex:idx_token_tx_collector_pickup_source,priority:1;uniqueIndex:idx_token_tx_collector_milestone,priority:1"`
	PickupID     *uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_token_tx_collector_pickup_source,priority:2"`
	Source       string         `gorm:"type:varchar(32);not null;uniqueIndex:idx_token_tx_collector_pickup_source,priority:3"`
	MilestoneKey *string        `gorm:"type:varchar(32);uniqueIndex:idx_token_tx_collector_milestone,priority:2"`
	Amount       int64          `gorm:"not null"`
	Type         string         `gorm:"type:varchar(16);not null"`
	Description  string         `gorm:"type:text;not null"`
	Metadata     datatypes.JSON
	BalanceAfter int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_token_tx_collector_created,priority:2"`
}

func (TokenTransactionModel) TableName() string {
	return "token_transactions"
}

func (m *TokenTransactionModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
