package usecase

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the token of a known one
	RegisterDevice(ctx context.Context, collectorID uuid.UUID, deviceInfo *DeviceInfo) (*entity.CollectorDevice, error)

	// GetCollectorDevices retrieves all devices for a collector
	GetCollectorDevices(ctx context.Context, collectorID uuid.UUID) ([]*entity.CollectorDevice, error)

	// RemoveDevice deletes a device owned by the collector
	RemoveDevice(ctx context.Context, collectorID, deviceID uuid.UUID) error

	// NotifyCollector pushes to every active device and deactivates rejected tokens
	NotifyCollector(ctx context.Context, collectorID uuid.UUID, title, body string, data map[string]string) error
}
