package repository

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrPickupNotFound is returned when a pickup does not exist.
var ErrPickupNotFound = errors.New("pickup not found")

// ErrPickupNotPending is returned when a verification targets a pickup that already left pending.
var ErrPickupNotPending = errors.New("pickup is not pending")

// PickupRepository persists collector pickups.
type PickupRepository interface {
	Create(ctx context.Context, pickup *entity.Pickup) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pickup, error)

	// UpdateVerification stores status and verification fields, only while the stored
	// pickup is still pending.
	UpdateVerification(ctx context.Context, pickup *entity.Pickup) error

	// CountVerifiedByCollector counts pickups in verified or paid status.
	CountVerifiedByCollector(ctx context.Context, collectorID uuid.UUID) (int64, error)

	// FindPendingInBound lists a collector's pending pickups inside bound, oldest first.
	FindPendingInBound(ctx context.Context, collectorID uuid.UUID, bound orb.Bound, limit int) ([]*entity.Pickup, error)
}
