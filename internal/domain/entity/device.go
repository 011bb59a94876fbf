package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollectorDevice is a collector's phone registered for milestone pushes.
type CollectorDevice struct {
	ID          uuid.UUID `json:"id"`
	CollectorID uuid.UUID `json:"collector_id"`
	FCMToken    string    `json:"fcm_token"`
	DeviceID    string    `json:"device_id"` // Client-side device identifier.
	Platform    string    `json:"platform"`  // ios or android.
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
