package qrcode

import (
	"encoding/json"
	"fmt"

	"reclaim/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const pickupHandoffType = "pickup_handoff"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// PickupQRData is the JSON text encoded in a pickup hand-off code
type PickupQRData struct {
	PickupID    string `json:"pickup_id"`
	CollectorID string `json:"collector_id"`
	Type        string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// EncodePickupPayload returns the text a scanner reads back from the code
func EncodePickupPayload(pickupID, collectorID uuid.UUID) (string, error) {
	jsonData, err := json.Marshal(PickupQRData{
		PickupID:    pickupID.String(),
		CollectorID: collectorID.String(),
		Type:        pickupHandoffType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	return string(jsonData), nil
}

// GeneratePickupQR renders the hand-off payload as a PNG
func (s *qrcodeService) GeneratePickupQR(pickupID, collectorID uuid.UUID) ([]byte, error) {
	payload, err := EncodePickupPayload(pickupID, collectorID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePickupQR decodes scanned text back into pickup and collector IDs
func (s *qrcodeService) ParsePickupQR(qrData string) (*service.PickupHandoff, error) {
	var data PickupQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != pickupHandoffType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	pickupID, err := uuid.Parse(data.PickupID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pickup ID: %w", err)
	}

	collectorID, err := uuid.Parse(data.CollectorID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse collector ID: %w", err)
	}

	return &service.PickupHandoff{
		PickupID:    pickupID,
		CollectorID: collectorID,
	}, nil
}
