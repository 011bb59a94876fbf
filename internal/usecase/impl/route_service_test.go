package impl

import (
	"context"
	"testing"

	"reclaim/config"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/routing"
	mockRepo "reclaim/internal/mocks/repository"
	mockSvc "reclaim/internal/mocks/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRouteService(t *testing.T) (usecase.RouteUsecase, *mockRepo.MockPickupRepository, *mockSvc.MockMetricsRecorder) {
	pickupRepo := mockRepo.NewMockPickupRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	service := NewRouteService(RouteServiceParams{
		Config: &config.Config{Routing: &config.RoutingConfig{
			MaxWaypoints:           3,
			BalancedValueThreshold: 400,
			PendingSearchRadiusM:   1000,
		}},
		PickupRepo: pickupRepo,
		Metrics:    metrics,
		Logger:     discardLogger(),
	})

	return service, pickupRepo, metrics
}

func TestRouteService_OptimizeRoute_Nearest(t *testing.T) {
	service, _, metrics := createTestRouteService(t)
	metrics.EXPECT().ObserveRoute("nearest", 2, mock.Anything).Return()

	route, err := service.OptimizeRoute(context.Background(), &usecase.OptimizeRouteInput{
		Origin: orb.Point{0, 0},
		Waypoints: []entity.Waypoint{
			{ID: "far", Coordinates: orb.Point{0, 0.02}, Weight: 1},
			{ID: "near", Coordinates: orb.Point{0, 0.01}, Weight: 1},
		},
		Strategy: entity.StrategyNearest,
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, route.RouteOrder)
	assert.Equal(t, "near", route.Waypoints[0].ID)
	assert.Equal(t, entity.StrategyNearest, route.Strategy)
}

func TestRouteService_OptimizeRoute_DefaultsToBalanced(t *testing.T) {
	service, _, metrics := createTestRouteService(t)
	// 2 kg x 30 per kg stays under the threshold, so balanced resolves to nearest
	metrics.EXPECT().ObserveRoute("nearest", 1, mock.Anything).Return()

	route, err := service.OptimizeRoute(context.Background(), &usecase.OptimizeRouteInput{
		Origin:    orb.Point{0, 0},
		Waypoints: []entity.Waypoint{{ID: "a", Coordinates: orb.Point{0.01, 0}, Weight: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StrategyNearest, route.Strategy)
}

func TestRouteService_OptimizeRoute_TruncatesToConfiguredCap(t *testing.T) {
	service, _, metrics := createTestRouteService(t)
	metrics.EXPECT().ObserveRoute("nearest", 3, mock.Anything).Return()

	waypoints := make([]entity.Waypoint, 0, 5)
	for i := range 5 {
		waypoints = append(waypoints, entity.Waypoint{ID: uuid.NewString(), Coordinates: orb.Point{float64(i) * 0.01, 0}, Weight: 1})
	}

	route, err := service.OptimizeRoute(context.Background(), &usecase.OptimizeRouteInput{
		Origin:    orb.Point{0, 0},
		Waypoints: waypoints,
		Strategy:  entity.StrategyNearest,
	})

	require.NoError(t, err)
	assert.Len(t, route.Waypoints, 3)
	assert.ElementsMatch(t, []int{0, 1, 2}, route.RouteOrder)
}

func TestRouteService_OptimizeRoute_IgnoresWaypointsPastCap(t *testing.T) {
	service, _, metrics := createTestRouteService(t)
	metrics.EXPECT().ObserveRoute("nearest", 3, mock.Anything).Return()

	waypoints := []entity.Waypoint{
		{ID: "a", Coordinates: orb.Point{0.01, 0}, Weight: 1},
		{ID: "b", Coordinates: orb.Point{0.02, 0}, Weight: 1},
		{ID: "c", Coordinates: orb.Point{0.03, 0}, Weight: 1},
		{ID: "bad", Coordinates: orb.Point{0, 95}, Weight: -1},
	}

	route, err := service.OptimizeRoute(context.Background(), &usecase.OptimizeRouteInput{
		Origin:    orb.Point{0, 0},
		Waypoints: waypoints,
		Strategy:  entity.StrategyNearest,
	})

	require.NoError(t, err)
	assert.Len(t, route.Waypoints, 3)
}

func TestRouteService_OptimizeRoute_Validation(t *testing.T) {
	service, _, _ := createTestRouteService(t)
	ctx := context.Background()

	_, err := service.OptimizeRoute(ctx, &usecase.OptimizeRouteInput{Origin: orb.Point{0, 0}, Strategy: "fastest"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.OptimizeRoute(ctx, &usecase.OptimizeRouteInput{Origin: orb.Point{0, 95}})
	var originErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &originErr))
	assert.Equal(t, -1, originErr.Index)

	_, err = service.OptimizeRoute(ctx, &usecase.OptimizeRouteInput{
		Origin: orb.Point{0, 0},
		Waypoints: []entity.Waypoint{
			{ID: "a", Coordinates: orb.Point{0, 1}},
			{ID: "a", Coordinates: orb.Point{0, 2}},
		},
	})
	var wpErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &wpErr))
	assert.Equal(t, 1, wpErr.Index)
}

func TestRouteService_OptimizePendingPickups(t *testing.T) {
	service, pickupRepo, metrics := createTestRouteService(t)
	ctx := context.Background()
	collectorID := uuid.New()
	origin := orb.Point{121.5, 25.0}

	near := &entity.Pickup{ID: uuid.New(), CollectorID: collectorID, Category: entity.CategoryPET, EstimatedWeight: 3, Location: orb.Point{121.501, 25.001}, Status: entity.PickupStatusPending}
	// inside the search box but about 1.2 km away, past the radius
	corner := &entity.Pickup{ID: uuid.New(), CollectorID: collectorID, Category: entity.CategoryPP, EstimatedWeight: 3, Location: orb.Point{121.5085, 25.008}, Status: entity.PickupStatusPending}

	pickupRepo.EXPECT().
		FindPendingInBound(mock.Anything, collectorID, routing.SearchBound(origin, 1000), 0).
		Return([]*entity.Pickup{near, corner}, nil)
	metrics.EXPECT().ObserveRoute("nearest", 1, mock.Anything).Return()

	route, err := service.OptimizePendingPickups(ctx, &usecase.PendingRouteInput{
		CollectorID: collectorID,
		Origin:      origin,
		Strategy:    entity.StrategyNearest,
	})

	require.NoError(t, err)
	require.Len(t, route.Waypoints, 1)
	assert.Equal(t, near.ID.String(), route.Waypoints[0].ID)
	assert.Equal(t, entity.CategoryPET, route.Waypoints[0].Category)
}

func TestRouteService_OptimizePendingPickups_CornersDoNotCrowdOutCircle(t *testing.T) {
	service, pickupRepo, metrics := createTestRouteService(t)
	ctx := context.Background()
	collectorID := uuid.New()
	origin := orb.Point{121.5, 25.0}

	pickup := func(loc orb.Point) *entity.Pickup {
		return &entity.Pickup{ID: uuid.New(), CollectorID: collectorID, Category: entity.CategoryPET, EstimatedWeight: 1, Location: loc, Status: entity.PickupStatusPending}
	}
	// oldest first: three box corners outside the radius, then the stops that count
	found := []*entity.Pickup{
		pickup(orb.Point{121.5085, 25.008}),
		pickup(orb.Point{121.4915, 25.008}),
		pickup(orb.Point{121.5085, 24.992}),
		pickup(orb.Point{121.501, 25.001}),
		pickup(orb.Point{121.502, 25.0}),
		pickup(orb.Point{121.5, 25.002}),
		pickup(orb.Point{121.499, 25.0}),
	}

	pickupRepo.EXPECT().
		FindPendingInBound(mock.Anything, collectorID, routing.SearchBound(origin, 1000), 0).
		Return(found, nil)
	metrics.EXPECT().ObserveRoute("nearest", 3, mock.Anything).Return()

	route, err := service.OptimizePendingPickups(ctx, &usecase.PendingRouteInput{
		CollectorID: collectorID,
		Origin:      origin,
		Strategy:    entity.StrategyNearest,
	})

	require.NoError(t, err)
	ids := make([]string, 0, len(route.Waypoints))
	for _, wp := range route.Waypoints {
		ids = append(ids, wp.ID)
	}
	assert.ElementsMatch(t, []string{found[3].ID.String(), found[4].ID.String(), found[5].ID.String()}, ids)
}

func TestRouteService_OptimizePendingPickups_Errors(t *testing.T) {
	service, pickupRepo, _ := createTestRouteService(t)
	ctx := context.Background()
	collectorID := uuid.New()

	_, err := service.OptimizePendingPickups(ctx, &usecase.PendingRouteInput{Origin: orb.Point{0, 0}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.OptimizePendingPickups(ctx, &usecase.PendingRouteInput{CollectorID: collectorID, RadiusMeters: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	pickupRepo.EXPECT().
		FindPendingInBound(mock.Anything, collectorID, mock.Anything, 0).
		Return(nil, errors.New("connection reset"))

	_, err = service.OptimizePendingPickups(ctx, &usecase.PendingRouteInput{CollectorID: collectorID, RadiusMeters: 500})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
