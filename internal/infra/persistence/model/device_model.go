package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollectorDeviceModel is the GORM-specific struct for the 'collector_devices' table.
type CollectorDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CollectorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_collector_devices_collector_device,priority:1"`
	FCMToken    string    `gorm:"type:varchar(255);not null;index"`
	DeviceID    string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_collector_devices_collector_device,priority:2"`
	Platform    string    `gorm:"type:varchar(50);not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (CollectorDeviceModel) TableName() string {
	return "collector_devices"
}

func (m *CollectorDeviceModel) BeforeCreate(_ *gorm.DB) error {
	id, err := newID(m.ID)
	m.ID = id

	return err
}
