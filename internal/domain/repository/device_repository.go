// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when the collector already registered the device.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores collector devices for push notifications.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.CollectorDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CollectorDevice, error)

	// FindActiveDevicesByCollector lists devices eligible for pushes.
	FindActiveDevicesByCollector(ctx context.Context, collectorID uuid.UUID) ([]*entity.CollectorDevice, error)

	FindDevicesByCollector(ctx context.Context, collectorID uuid.UUID) ([]*entity.CollectorDevice, error)

	// UpdateFCMToken replaces the token and reactivates the device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error
	// DeactivateByFCMTokens marks devices with rejected tokens inactive.
	DeactivateByFCMTokens(ctx context.Context, tokens []string) error

	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
