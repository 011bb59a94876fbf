package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size falls back", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GeneratePickupQR(uuid.New(), uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParsePickupQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	pickupID, collectorID := uuid.New(), uuid.New()

	payload, err := EncodePickupPayload(pickupID, collectorID)
	require.NoError(t, err)

	handoff, err := service.ParsePickupQR(payload)
	require.NoError(t, err)
	assert.Equal(t, pickupID, handoff.PickupID)
	assert.Equal(t, collectorID, handoff.CollectorID)
}

func TestQRCodeService_ParsePickupQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")
	marshal := func(d PickupQRData) string {
		raw, err := json.Marshal(d)
		require.NoError(t, err)

		return string(raw)
	}

	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", marshal(PickupQRData{PickupID: uuid.NewString(), CollectorID: uuid.NewString(), Type: "subscription"}), "invalid QR code type"},
		{"bad pickup id", marshal(PickupQRData{PickupID: "nope", CollectorID: uuid.NewString(), Type: pickupHandoffType}), "failed to parse pickup ID"},
		{"bad collector id", marshal(PickupQRData{PickupID: uuid.NewString(), CollectorID: "nope", Type: pickupHandoffType}), "failed to parse collector ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParsePickupQR(tt.payload)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
