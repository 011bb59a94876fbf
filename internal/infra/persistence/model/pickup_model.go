package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PickupModel is the GORM-specific struct for the 'pickups' table.
type PickupModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectorID     uuid.UUID `gorm:"type:uuid;not null;index:idx_pickups_collector_status,priority:1"`
	Category        string    `gorm:"type:varchar(16);not null"`
	EstimatedWeight float64   `gorm:"not null"`
	ActualWeight    *float64
	Latitude        float64 `gorm:"type:decimal(10,8);not null"`
	Longitude       float64 `gorm:"type:decimal(11,8);not null"`
	Address         string  `gorm:"type:text"`
	Status          string  `gorm:"type:varchar(16);not null;default:'pending';index:idx_pickups_collector_status,priority:2"`
	AIConfidence    *float64
	ManualReview    bool       `gorm:"not null;default:false"`
	VerifiedBy      *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt      *time.Time
	PhotoBefore     string `gorm:"type:text"`
	PhotoAfter      string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PickupModel) TableName() string {
	return "pickups"
}

func (m *PickupModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
