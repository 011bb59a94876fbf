package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	mockUsecase "reclaim/internal/mocks/usecase"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRouteHandler(t *testing.T) (*RouteHandler, *mockUsecase.MockRouteUsecase) {
	routeUC := mockUsecase.NewMockRouteUsecase(t)

	return NewRouteHandler(RouteHandlerParams{RouteUC: routeUC, Logger: discardLogger()}), routeUC
}

func sampleRoute() *entity.OptimizedRoute {
	return &entity.OptimizedRoute{
		Waypoints: []entity.Waypoint{
			{ID: "b", Coordinates: orb.Point{121.01, 25.0}, Weight: 2},
			{ID: "a", Coordinates: orb.Point{121.02, 25.01}, Weight: 1},
		},
		TotalDistance: 2500,
		TotalDuration: 3750,
		RouteOrder:    []int{1, 0},
		Strategy:      entity.StrategyNearest,
	}
}

const optimizeBody = `{
	"origin": {"lng": 121.0, "lat": 25.0},
	"strategy": "nearest",
	"waypoints": [
		{"id": "a", "coordinates": {"lng": 121.02, "lat": 25.01}, "weight": 1},
		{"id": "b", "coordinates": {"lng": 121.01, "lat": 25.0}, "weight": 2, "value": 90}
	]
}`

func TestRouteHandler_OptimizeRoute(t *testing.T) {
	h, routeUC := createTestRouteHandler(t)

	routeUC.EXPECT().
		OptimizeRoute(mock.Anything, mock.MatchedBy(func(in *usecase.OptimizeRouteInput) bool {
			return in.Origin == orb.Point{121.0, 25.0} &&
				in.Strategy == entity.StrategyNearest &&
				len(in.Waypoints) == 2 &&
				in.Waypoints[1].Value != nil && *in.Waypoints[1].Value == 90
		})).
		Return(sampleRoute(), nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/routes/optimize", optimizeBody, uuid.New())
	require.NoError(t, h.OptimizeRoute(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RouteOrder []int     `json:"routeOrder"`
		Duration   string    `json:"duration"`
		Bounds     []float64 `json:"bounds"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, []int{1, 0}, body.RouteOrder)
	assert.Equal(t, "1h2m", body.Duration)
	assert.Equal(t, []float64{121.0, 25.0, 121.02, 25.01}, body.Bounds)
}

func TestRouteHandler_OptimizeRouteGeoJSON(t *testing.T) {
	h, routeUC := createTestRouteHandler(t)

	routeUC.EXPECT().OptimizeRoute(mock.Anything, mock.Anything).Return(sampleRoute(), nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/routes/optimize/geojson", optimizeBody, uuid.New())
	require.NoError(t, h.OptimizeRouteGeoJSON(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, geoJSONContentType, rec.Header().Get("Content-Type"))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Type string `json:"type"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	// path, origin, two stops
	require.Len(t, fc.Features, 4)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
}

func TestRouteHandler_OptimizeRoute_Validation(t *testing.T) {
	h, routeUC := createTestRouteHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing origin", `{"waypoints": []}`},
		{"unknown strategy", `{"origin": {"lng": 0, "lat": 0}, "strategy": "fastest"}`},
		{"waypoint without id", `{"origin": {"lng": 0, "lat": 0}, "waypoints": [{"coordinates": {"lng": 1, "lat": 1}}]}`},
		{"malformed json", `{"origin":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(http.MethodPost, "/api/v1/routes/optimize", tt.body, uuid.New())
			require.NoError(t, h.OptimizeRoute(c))
			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		})
	}

	routeUC.EXPECT().
		OptimizeRoute(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError(1, "duplicate id of waypoint 0"))

	c, rec := newTestContext(http.MethodPost, "/api/v1/routes/optimize", optimizeBody, uuid.New())
	require.NoError(t, h.OptimizeRoute(c))
	requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_WAYPOINT")
}

func TestRouteHandler_OptimizePending(t *testing.T) {
	h, routeUC := createTestRouteHandler(t)
	collectorID := uuid.New()

	routeUC.EXPECT().
		OptimizePendingPickups(mock.Anything, &usecase.PendingRouteInput{
			CollectorID:  collectorID,
			Origin:       orb.Point{121.5, 25.05},
			RadiusMeters: 2000,
			Strategy:     entity.StrategyWeighted,
		}).
		Return(&entity.OptimizedRoute{Waypoints: []entity.Waypoint{}, RouteOrder: []int{}, Strategy: entity.StrategyWeighted}, nil)

	body := `{"origin": {"lng": 121.5, "lat": 25.05}, "radiusMeters": 2000, "strategy": "weighted"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/routes/pending", body, collectorID)
	require.NoError(t, h.OptimizePending(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodPost, "/api/v1/routes/pending", body, uuid.Nil)
	require.NoError(t, h.OptimizePending(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
