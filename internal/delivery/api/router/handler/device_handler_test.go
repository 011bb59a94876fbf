package handler

import (
	"net/http"
	"testing"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	mockUsecase "reclaim/internal/mocks/usecase"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	collectorID := uuid.New()

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, collectorID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "dev-1", Platform: "android"}).
		Return(&entity.CollectorDevice{ID: uuid.New(), CollectorID: collectorID, IsActive: true}, nil)

	body := `{"fcm_token": "tok", "device_id": "dev-1", "platform": "android"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/devices", body, collectorID)
	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/api/v1/devices", `{"fcm_token": "tok", "device_id": "dev-1", "platform": "web"}`, collectorID)
	require.NoError(t, h.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeviceHandler_RemoveDevice(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	collectorID := uuid.New()
	deviceID := uuid.New()
	foreignID := uuid.New()

	deviceUC.EXPECT().RemoveDevice(mock.Anything, collectorID, deviceID).Return(nil)
	deviceUC.EXPECT().RemoveDevice(mock.Anything, collectorID, foreignID).Return(domainerrors.ErrForbidden.WrapMessage("device belongs to another collector"))

	c, rec := newTestContext(http.MethodDelete, "/", "", collectorID)
	c.SetParamNames("id")
	c.SetParamValues(deviceID.String())
	require.NoError(t, h.RemoveDevice(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newTestContext(http.MethodDelete, "/", "", collectorID)
	c.SetParamNames("id")
	c.SetParamValues(foreignID.String())
	require.NoError(t, h.RemoveDevice(c))
	requireErrorCode(t, rec, http.StatusForbidden, "FORBIDDEN")
}
