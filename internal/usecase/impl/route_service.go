package impl

import (
	"context"
	"fmt"
	"log/slog"

	"reclaim/config"
	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/repository"
	"reclaim/internal/domain/routing"
	"reclaim/internal/domain/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
)

type routeService struct {
	optimizer     *routing.Optimizer
	pickupRepo    repository.PickupRepository
	defaultRadius float64
	metrics       service.MetricsRecorder
	logger        *slog.Logger
}

// RouteServiceParams holds dependencies for RouteService, injected by Fx.
type RouteServiceParams struct {
	fx.In

	Config     *config.Config
	PickupRepo repository.PickupRepository
	Metrics    service.MetricsRecorder `optional:"true"`
	Logger     *slog.Logger
}

func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	var (
		opts   []routing.Option
		radius float64
	)
	if cfg := params.Config.Routing; cfg != nil {
		opts = append(opts,
			routing.WithMaxWaypoints(cfg.MaxWaypoints),
			routing.WithBalancedThreshold(cfg.BalancedValueThreshold),
		)
		radius = cfg.PendingSearchRadiusM
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &routeService{
		optimizer:     routing.NewOptimizer(opts...),
		pickupRepo:    params.PickupRepo,
		defaultRadius: radius,
		metrics:       metrics,
		logger:        params.Logger,
	}
}

func (srv *routeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *routeService) OptimizeRoute(ctx context.Context, input *usecase.OptimizeRouteInput) (*entity.OptimizedRoute, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("missing route input")
	}

	strategy, err := resolveStrategy(input.Strategy)
	if err != nil {
		return nil, err
	}
	if err := routing.ValidateOrigin(input.Origin); err != nil {
		return nil, err
	}
	// stops past the cap are dropped unseen, so they cannot fail the request
	waypoints := input.Waypoints
	if limit := srv.optimizer.MaxWaypoints(); len(waypoints) > limit {
		srv.log(ctx).Warn("Waypoints truncated to cap",
			slog.Int("requested", len(waypoints)),
			slog.Int("max", limit))
		waypoints = waypoints[:limit]
	}
	if err := routing.ValidateWaypoints(waypoints); err != nil {
		return nil, err
	}

	return srv.optimize(ctx, &usecase.OptimizeRouteInput{
		Origin:    input.Origin,
		Waypoints: waypoints,
	}, strategy), nil
}

// OptimizePendingPickups uses the collector's pending pickups within the radius as waypoints.
func (srv *routeService) OptimizePendingPickups(ctx context.Context, input *usecase.PendingRouteInput) (*entity.OptimizedRoute, error) {
	if input == nil || input.CollectorID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("collector id is required")
	}

	strategy, err := resolveStrategy(input.Strategy)
	if err != nil {
		return nil, err
	}
	if err := routing.ValidateOrigin(input.Origin); err != nil {
		return nil, err
	}
	if input.RadiusMeters < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radius must not be negative")
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = srv.defaultRadius
	}

	// unlimited: box corners must not crowd out stops inside the circle
	pickups, err := srv.pickupRepo.FindPendingInBound(ctx, input.CollectorID, routing.SearchBound(input.Origin, radius), 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pending pickups")
	}

	limit := srv.optimizer.MaxWaypoints()
	waypoints := make([]entity.Waypoint, 0, min(len(pickups), limit))
	for _, p := range pickups {
		if len(waypoints) == limit {
			break
		}
		if routing.Haversine(input.Origin, p.Location) <= radius {
			waypoints = append(waypoints, p.AsWaypoint())
		}
	}

	srv.log(ctx).Debug("Pending pickups loaded for routing",
		slog.String("collector_id", input.CollectorID.String()),
		slog.Int("found", len(pickups)),
		slog.Int("within_radius", len(waypoints)),
		slog.Float64("radius_m", radius))

	return srv.optimize(ctx, &usecase.OptimizeRouteInput{
		Origin:    input.Origin,
		Waypoints: waypoints,
	}, strategy), nil
}

func (srv *routeService) optimize(ctx context.Context, input *usecase.OptimizeRouteInput, strategy entity.Strategy) *entity.OptimizedRoute {
	_, span := otel.Tracer(tracerName).Start(ctx, "RouteService.Optimize")
	defer span.End()

	route := srv.optimizer.Optimize(input.Origin, input.Waypoints, strategy)

	span.SetAttributes(
		attribute.String("route.requested_strategy", string(strategy)),
		attribute.String("route.strategy", string(route.Strategy)),
		attribute.Int("route.stops", len(route.Waypoints)),
		attribute.Float64("route.distance_m", route.TotalDistance),
	)
	srv.metrics.ObserveRoute(string(route.Strategy), len(route.Waypoints), route.TotalDistance)

	return route
}

// resolveStrategy defaults an empty strategy to balanced.
func resolveStrategy(strategy entity.Strategy) (entity.Strategy, error) {
	if strategy == "" {
		return entity.StrategyBalanced, nil
	}
	if !strategy.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("unknown strategy %q", strategy))
	}

	return strategy, nil
}
