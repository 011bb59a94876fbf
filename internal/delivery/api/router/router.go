// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reclaim/internal/delivery/api/middleware"
	"reclaim/internal/delivery/api/router/handler"
	"reclaim/internal/domain/entity"
	"reclaim/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RouteHandler   *handler.RouteHandler
	TokenHandler   *handler.TokenHandler
	PickupHandler  *handler.PickupHandler
	DeviceHandler  *handler.DeviceHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Collector `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	routeHandler   *handler.RouteHandler
	tokenHandler   *handler.TokenHandler
	pickupHandler  *handler.PickupHandler
	deviceHandler  *handler.DeviceHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		routeHandler:   params.RouteHandler,
		tokenHandler:   params.TokenHandler,
		pickupHandler:  params.PickupHandler,
		deviceHandler:  params.DeviceHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	routesGroup := apiV1.Group("/routes")
	{
		routesGroup.POST("/optimize", r.routeHandler.OptimizeRoute)
		routesGroup.POST("/optimize/geojson", r.routeHandler.OptimizeRouteGeoJSON)
		routesGroup.POST("/pending", r.routeHandler.OptimizePending, r.authMiddleware.RequireRole(entity.RoleCollector))
	}

	tokensGroup := apiV1.Group("/tokens")
	tokensGroup.Use(r.authMiddleware.RequireRole(entity.RoleCollector))
	{
		tokensGroup.GET("/balance", r.tokenHandler.GetBalance)
		tokensGroup.GET("/transactions", r.tokenHandler.GetTransactions)
		tokensGroup.GET("/transactions/export", r.tokenHandler.ExportTransactions)
		tokensGroup.GET("/milestones/next", r.tokenHandler.GetNextMilestone)
		tokensGroup.POST("/recalculate", r.tokenHandler.Recalculate)
	}

	pickupsGroup := apiV1.Group("/pickups")
	{
		collectorOnly := r.authMiddleware.RequireRole(entity.RoleCollector)
		verifierOnly := r.authMiddleware.RequireRole(entity.RoleVerifier)

		pickupsGroup.POST("", r.pickupHandler.CreatePickup, collectorOnly)
		pickupsGroup.GET("/:id", r.pickupHandler.GetPickup, collectorOnly)
		pickupsGroup.GET("/:id/qr", r.pickupHandler.GetPickupQR, collectorOnly)
		pickupsGroup.POST("/:id/verify", r.pickupHandler.VerifyPickup, verifierOnly)
		pickupsGroup.POST("/verify-qr", r.pickupHandler.VerifyPickupByQR, verifierOnly)
	}

	// Device management routes
	devicesGroup := apiV1.Group("/devices")
	devicesGroup.Use(r.authMiddleware.RequireRole(entity.RoleCollector))
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetDevices)
		devicesGroup.DELETE("/:id", r.deviceHandler.RemoveDevice)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/tokens/award", r.adminHandler.AwardTokens)
		adminGroup.POST("/tokens/export", r.adminHandler.ArchiveTransactions)
		adminGroup.POST("/pickups/:id/reprocess", r.adminHandler.ReprocessPickup)
		adminGroup.POST("/collectors/:id/recalculate", r.adminHandler.RecalculateCollector)
	}
}
