package service

import (
	"github.com/google/uuid"
)

// PickupHandoff is what a verifier learns from scanning a collector's QR code.
type PickupHandoff struct {
	PickupID    uuid.UUID
	CollectorID uuid.UUID
}

// QRCodeService encodes pickup hand-off codes
type QRCodeService interface {
	// GeneratePickupQR renders a PNG QR code identifying the pickup
	GeneratePickupQR(pickupID, collectorID uuid.UUID) ([]byte, error)

	// ParsePickupQR decodes the scanned payload
	ParsePickupQR(qrData string) (*PickupHandoff, error)
}
