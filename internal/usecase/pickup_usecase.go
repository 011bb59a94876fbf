package usecase

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreatePickupInput is a collector's pickup log entry.
type CreatePickupInput struct {
	CollectorID     uuid.UUID
	Category        entity.PlasticCategory
	EstimatedWeight float64
	Location        orb.Point
	Address         string
	PhotoBefore     string
}

// VerifyPickupInput is the verifier's assessment.
type VerifyPickupInput struct {
	PickupID     uuid.UUID
	VerifierID   uuid.UUID
	ActualWeight *float64
	AIConfidence *float64
	ManualReview bool
	PhotoAfter   string
	// Reject marks the pickup rejected instead of verified
	Reject bool
}

// VerifyPickupOutput reports the verification and what the ledger did with it.
type VerifyPickupOutput struct {
	Pickup *entity.Pickup `json:"pickup"`
	// Reward is nil when processing was queued, skipped, or failed
	Reward *entity.PickupRewardResult `json:"reward,omitempty"`
	Queued bool                       `json:"queued"`
	// LedgerError is set when token processing failed; the verification still stands
	LedgerError string `json:"ledgerError,omitempty"`
}

// PickupUsecase covers the pickup boundary the ledger reads from.
type PickupUsecase interface {
	CreatePickup(ctx context.Context, input *CreatePickupInput) (*entity.Pickup, error)

	GetPickup(ctx context.Context, collectorID, pickupID uuid.UUID) (*entity.Pickup, error)

	// GeneratePickupQR renders the hand-off code the collector shows the verifier
	GeneratePickupQR(ctx context.Context, collectorID, pickupID uuid.UUID) ([]byte, error)

	VerifyPickup(ctx context.Context, input *VerifyPickupInput) (*VerifyPickupOutput, error)

	// VerifyPickupByQR resolves the scanned payload and verifies the pickup it names
	VerifyPickupByQR(ctx context.Context, qrData string, input *VerifyPickupInput) (*VerifyPickupOutput, error)
}
