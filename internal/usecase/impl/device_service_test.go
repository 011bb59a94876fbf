package impl

import (
	"context"
	"fmt"
	"testing"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	mockRepo "reclaim/internal/mocks/repository"
	mockSvc "reclaim/internal/mocks/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service         usecase.DeviceUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          discardLogger(),
	})

	return deviceServiceFixtures{
		service:         service,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCollector(ctx, collectorID).
		Return([]*entity.CollectorDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CollectorDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, collectorID, deviceInfo)
	require.NoError(t, err)
	assert.NotNil(t, device)
	assert.Equal(t, collectorID, device.CollectorID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, deviceInfo.Platform, device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_UpdateExisting(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	deviceID := uuid.New()
	existingDevice := &entity.CollectorDevice{
		ID:          deviceID,
		CollectorID: collectorID,
		FCMToken:    "old-token",
		DeviceID:    "device-123",
		Platform:    "ios",
		IsActive:    false,
	}

	updatedDevice := &entity.CollectorDevice{
		ID:          deviceID,
		CollectorID: collectorID,
		FCMToken:    "new-fcm-token",
		DeviceID:    "device-123",
		Platform:    "ios",
		IsActive:    true,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCollector(ctx, collectorID).
		Return([]*entity.CollectorDevice{existingDevice}, nil)

	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(updatedDevice, nil)

	device, err := fx.service.RegisterDevice(ctx, collectorID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "android",
	}

	_, err := fx.service.RegisterDevice(ctx, collectorID, &usecase.DeviceInfo{DeviceID: "device-123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.deviceRepo.EXPECT().
		FindDevicesByCollector(ctx, collectorID).
		Return(nil, errors.New("database error")).
		Once()

	device, err := fx.service.RegisterDevice(ctx, collectorID, deviceInfo)
	assert.Error(t, err)
	assert.Nil(t, device)
	assert.Contains(t, err.Error(), "failed to find devices by collector")

	fx.deviceRepo.EXPECT().
		FindDevicesByCollector(ctx, collectorID).
		Return([]*entity.CollectorDevice{}, nil).
		Once()
	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.Anything).
		Return(repository.ErrDuplicateDevice)

	_, err = fx.service.RegisterDevice(ctx, collectorID, deviceInfo)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestDeviceService_GetCollectorDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	expectedDevices := []*entity.CollectorDevice{
		{ID: uuid.New(), CollectorID: collectorID, IsActive: true},
		{ID: uuid.New(), CollectorID: collectorID, IsActive: false},
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByCollector(ctx, collectorID).
		Return(expectedDevices, nil)

	devices, err := fx.service.GetCollectorDevices(ctx, collectorID)
	require.NoError(t, err)
	assert.Equal(t, expectedDevices, devices)
}

func TestDeviceService_RemoveDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.CollectorDevice{ID: deviceID, CollectorID: collectorID}, nil)

	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	require.NoError(t, fx.service.RemoveDevice(ctx, collectorID, deviceID))
}

func TestDeviceService_RemoveDevice_Errors(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	missingID := uuid.New()
	foreignID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, missingID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.RemoveDevice(ctx, collectorID, missingID)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)

	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, foreignID).
		Return(&entity.CollectorDevice{ID: foreignID, CollectorID: uuid.New()}, nil)

	err = fx.service.RemoveDevice(ctx, collectorID, foreignID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDeviceService_NotifyCollector(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()
	data := map[string]string{"milestone": "first_pickup"}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCollector(ctx, collectorID).
		Return([]*entity.CollectorDevice{
			{CollectorID: collectorID, FCMToken: "token-a"},
			{CollectorID: collectorID, FCMToken: "token-b"},
		}, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "Milestone reached", "First verified pickup", data).
		Return(1, 1, []string{"token-b"}, nil)

	fx.deviceRepo.EXPECT().
		DeactivateByFCMTokens(ctx, []string{"token-b"}).
		Return(nil)

	err := fx.service.NotifyCollector(ctx, collectorID, "Milestone reached", "First verified pickup", data)
	require.NoError(t, err)
}

func TestDeviceService_NotifyCollector_Batches(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()

	devices := make([]*entity.CollectorDevice, 0, firebaseBatchSize+2)
	for i := range firebaseBatchSize + 2 {
		devices = append(devices, &entity.CollectorDevice{CollectorID: collectorID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCollector(ctx, collectorID).
		Return(devices, nil)

	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), "t", "b", mock.Anything).
		Return(firebaseBatchSize, 0, nil, nil).
		Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-500", "token-501"}, "t", "b", mock.Anything).
		Return(0, 2, nil, errors.New("quota exceeded")).
		Once()

	err := fx.service.NotifyCollector(ctx, collectorID, "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDeviceService_NotifyCollector_NoDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	collectorID := uuid.New()

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByCollector(ctx, collectorID).
		Return(nil, nil)

	require.NoError(t, fx.service.NotifyCollector(ctx, collectorID, "t", "b", nil))
}

func TestDeviceService_NotifyCollector_PushDisabled(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     discardLogger(),
	})

	// no repository calls expected without a notifier
	require.NoError(t, service.NotifyCollector(context.Background(), uuid.New(), "t", "b", nil))
}
