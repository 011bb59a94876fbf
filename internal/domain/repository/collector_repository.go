package repository

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectorRepository stores the collector profile and its cached balance.
type CollectorRepository interface {
	// FindOrCreate returns the profile, creating an empty one on first use.
	FindOrCreate(ctx context.Context, collectorID uuid.UUID) (*entity.CollectorProfile, error)

	// LockForUpdate creates the profile if needed and row-locks it for the
	// enclosing transaction, serializing concurrent awards per collector.
	LockForUpdate(ctx context.Context, collectorID uuid.UUID) error

	// UpdateCachedBalance overwrites the cached balance, creating the profile when missing.
	UpdateCachedBalance(ctx context.Context, collectorID uuid.UUID, balance int64) error
}
