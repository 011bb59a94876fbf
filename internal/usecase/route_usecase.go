package usecase

import (
	"context"

	"reclaim/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// OptimizeRouteInput carries caller-supplied waypoints.
type OptimizeRouteInput struct {
	Origin    orb.Point
	Waypoints []entity.Waypoint
	Strategy  entity.Strategy
}

// PendingRouteInput plans over the collector's own pending pickups near Origin.
type PendingRouteInput struct {
	CollectorID  uuid.UUID
	Origin       orb.Point
	RadiusMeters float64 // 0 uses the configured default
	Strategy     entity.Strategy
}

// RouteUsecase plans collection routes.
type RouteUsecase interface {
	// OptimizeRoute validates input and orders the waypoints.
	OptimizeRoute(ctx context.Context, input *OptimizeRouteInput) (*entity.OptimizedRoute, error)

	OptimizePendingPickups(ctx context.Context, input *PendingRouteInput) (*entity.OptimizedRoute, error)
}
