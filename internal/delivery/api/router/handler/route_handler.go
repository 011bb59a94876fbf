package handler

import (
	"log/slog"
	"net/http"
	"time"

	"reclaim/internal/delivery/api/middleware"
	"reclaim/internal/delivery/api/response"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/routing"
	"reclaim/internal/usecase"
	"reclaim/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler serves collection route planning.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// PointRequest is a WGS84 coordinate; pointers let 0 through required.
type PointRequest struct {
	Lng *float64 `json:"lng" validate:"required"`
	Lat *float64 `json:"lat" validate:"required"`
}

func (p PointRequest) point() orb.Point {
	return orb.Point{*p.Lng, *p.Lat}
}

type WaypointRequest struct {
	ID          string       `json:"id" validate:"required"`
	Coordinates PointRequest `json:"coordinates" validate:"required"`
	Address     string       `json:"address"`
	Weight      float64      `json:"weight"`
	Value       *float64     `json:"value"`
	Category    string       `json:"category"`
	Status      string       `json:"status"`
}

type OptimizeRouteRequest struct {
	Origin    PointRequest      `json:"origin" validate:"required"`
	Waypoints []WaypointRequest `json:"waypoints" validate:"dive"`
	Strategy  string            `json:"strategy" validate:"strategy"`
}

type PendingRouteRequest struct {
	Origin       PointRequest `json:"origin" validate:"required"`
	RadiusMeters float64      `json:"radiusMeters" validate:"gte=0"`
	Strategy     string       `json:"strategy" validate:"strategy"`
}

// RouteResponse adds display helpers to the optimizer output.
type RouteResponse struct {
	*entity.OptimizedRoute
	Bounds   geojson.BBox `json:"bounds"`
	Duration string       `json:"duration"`
}

// OptimizeRoute orders caller-supplied waypoints.
func (h *RouteHandler) OptimizeRoute(c echo.Context) error {
	input, err := bindOptimize(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	route, err := h.routeUC.OptimizeRoute(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(input.Origin, route))
}

// OptimizeRouteGeoJSON returns the route as a FeatureCollection for map overlays.
func (h *RouteHandler) OptimizeRouteGeoJSON(c echo.Context) error {
	input, err := bindOptimize(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	route, err := h.routeUC.OptimizeRoute(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := routing.FeatureCollection(input.Origin, route).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal route geojson")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, data)
}

// OptimizePending plans over the caller's pending pickups near origin.
func (h *RouteHandler) OptimizePending(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PendingRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	origin := req.Origin.point()
	route, err := h.routeUC.OptimizePendingPickups(c.Request().Context(), &usecase.PendingRouteInput{
		CollectorID:  collectorID,
		Origin:       origin,
		RadiusMeters: req.RadiusMeters,
		Strategy:     entity.Strategy(req.Strategy),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(origin, route))
}

func bindOptimize(c echo.Context) (*usecase.OptimizeRouteInput, error) {
	var req OptimizeRouteRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid route input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	waypoints := make([]entity.Waypoint, 0, len(req.Waypoints))
	for _, wp := range req.Waypoints {
		waypoints = append(waypoints, entity.Waypoint{
			ID:          wp.ID,
			Coordinates: wp.Coordinates.point(),
			Address:     wp.Address,
			Weight:      wp.Weight,
			Value:       wp.Value,
			Category:    entity.PlasticCategory(wp.Category),
			Status:      wp.Status,
		})
	}

	return &usecase.OptimizeRouteInput{
		Origin:    req.Origin.point(),
		Waypoints: waypoints,
		Strategy:  entity.Strategy(req.Strategy),
	}, nil
}

func newRouteResponse(origin orb.Point, route *entity.OptimizedRoute) RouteResponse {
	return RouteResponse{
		OptimizedRoute: route,
		Bounds:         geojson.NewBBox(routing.RouteBound(origin, route)),
		Duration:       util.FormatDuration(time.Duration(route.TotalDuration * float64(time.Second))),
	}
}
