package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/domain/service"
	"reclaim/internal/errors"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

type deviceService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService `optional:"true"`
	Logger          *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, collectorID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CollectorDevice, error) {
	if deviceInfo == nil || deviceInfo.FCMToken == "" || deviceInfo.DeviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token and device id are required")
	}

	devices, err := s.deviceRepo.FindDevicesByCollector(ctx, collectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by collector: %w", err)
	}

	// Same client device: refresh its token
	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}

		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, fmt.Errorf("failed to update FCM token: %w", err)
		}

		updatedDevice, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to find device by ID: %w", err)
		}

		return updatedDevice, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device id: %w", err)
	}

	now := time.Now()
	device := &entity.CollectorDevice{
		ID:          id,
		CollectorID: collectorID,
		FCMToken:    deviceInfo.FCMToken,
		DeviceID:    deviceInfo.DeviceID,
		Platform:    deviceInfo.Platform,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return nil, domainerrors.ErrConflict.WrapMessage("device registered concurrently")
		}

		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// GetCollectorDevices retrieves all devices for a collector
func (s *deviceService) GetCollectorDevices(ctx context.Context, collectorID uuid.UUID) ([]*entity.CollectorDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByCollector(ctx, collectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find devices by collector: %w", err)
	}

	return devices, nil
}

// RemoveDevice deletes a device after checking ownership
func (s *deviceService) RemoveDevice(ctx context.Context, collectorID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound
		}

		return fmt.Errorf("failed to find device by ID: %w", err)
	}

	if device.CollectorID != collectorID {
		return domainerrors.ErrForbidden.WrapMessage("device belongs to another collector")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}

// NotifyCollector sends in batches of firebaseBatchSize and deactivates rejected tokens.
func (s *deviceService) NotifyCollector(ctx context.Context, collectorID uuid.UUID, title, body string, data map[string]string) error {
	if s.notificationSvc == nil {
		s.log(ctx).Debug("Push disabled, skipping", slog.String("collector_id", collectorID.String()))

		return nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByCollector(ctx, collectorID)
	if err != nil {
		return fmt.Errorf("failed to find active devices: %w", err)
	}

	if len(devices) == 0 {
		s.log(ctx).Debug("No active devices, skipping push", slog.String("collector_id", collectorID.String()))

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		sent, failed int
		invalid      []string
		sendErr      error
	)
	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))

		successCount, failureCount, invalidTokens, err := s.notificationSvc.SendBatchNotification(ctx, tokens[start:end], title, body, data)
		if err != nil {
			sendErr = errors.Join(sendErr, err)

			continue
		}
		sent += successCount
		failed += failureCount
		invalid = append(invalid, invalidTokens...)
	}

	if len(invalid) > 0 {
		if err := s.deviceRepo.DeactivateByFCMTokens(ctx, invalid); err != nil {
			s.log(ctx).Warn("Failed to deactivate invalid tokens",
				slog.Int("count", len(invalid)),
				slog.Any("error", err))
		}
	}

	s.log(ctx).Info("Push sent",
		slog.String("collector_id", collectorID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalid)))

	if sendErr != nil {
		return fmt.Errorf("failed to send push notification: %w", sendErr)
	}

	return nil
}
