package handler

import (
	"log/slog"
	"net/http"

	"reclaim/internal/delivery/api/middleware"
	"reclaim/internal/delivery/api/response"
	"reclaim/internal/domain/entity"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PickupHandlerParams holds dependencies for PickupHandler, injected by Fx.
type PickupHandlerParams struct {
	fx.In

	PickupUC usecase.PickupUsecase
	Logger   *slog.Logger
}

// PickupHandler serves pickup logging and verification.
type PickupHandler struct {
	pickupUC usecase.PickupUsecase
	logger   *slog.Logger
}

func NewPickupHandler(params PickupHandlerParams) *PickupHandler {
	return &PickupHandler{
		pickupUC: params.PickupUC,
		logger:   params.Logger,
	}
}

type CreatePickupRequest struct {
	Category        string       `json:"category" validate:"required,category"`
	EstimatedWeight float64      `json:"estimated_weight" validate:"gt=0"`
	Location        PointRequest `json:"location" validate:"required"`
	Address         string       `json:"address"`
	PhotoBefore     string       `json:"photo_before"`
}

// VerifyPickupRequest is the verifier's assessment of a pickup.
type VerifyPickupRequest struct {
	ActualWeight *float64 `json:"actual_weight" validate:"omitempty,gt=0"`
	AIConfidence *float64 `json:"ai_confidence" validate:"omitempty,gte=0,lte=1"`
	ManualReview bool     `json:"manual_review"`
	PhotoAfter   string   `json:"photo_after"`
	Reject       bool     `json:"reject"`
}

type VerifyPickupQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
	VerifyPickupRequest
}

// CreatePickup logs a pickup for the calling collector.
func (h *PickupHandler) CreatePickup(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	pickup, err := h.pickupUC.CreatePickup(c.Request().Context(), &usecase.CreatePickupInput{
		CollectorID:     collectorID,
		Category:        entity.PlasticCategory(req.Category),
		EstimatedWeight: req.EstimatedWeight,
		Location:        req.Location.point(),
		Address:         req.Address,
		PhotoBefore:     req.PhotoBefore,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, pickup)
}

func (h *PickupHandler) GetPickup(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup ID")
	}

	pickup, err := h.pickupUC.GetPickup(c.Request().Context(), collectorID, pickupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pickup)
}

// GetPickupQR renders the hand-off code as a PNG.
func (h *PickupHandler) GetPickupQR(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup ID")
	}

	png, err := h.pickupUC.GeneratePickupQR(c.Request().Context(), collectorID, pickupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// VerifyPickup records a verifier's decision for the pickup in the path.
func (h *PickupHandler) VerifyPickup(c echo.Context) error {
	verifierID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup ID")
	}

	var req VerifyPickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := req.toInput(verifierID)
	input.PickupID = pickupID

	output, err := h.pickupUC.VerifyPickup(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// VerifyPickupByQR verifies the pickup named by a scanned hand-off code.
func (h *PickupHandler) VerifyPickupByQR(c echo.Context) error {
	verifierID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyPickupQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.pickupUC.VerifyPickupByQR(c.Request().Context(), req.QRData, req.toInput(verifierID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

func (r VerifyPickupRequest) toInput(verifierID uuid.UUID) *usecase.VerifyPickupInput {
	return &usecase.VerifyPickupInput{
		VerifierID:   verifierID,
		ActualWeight: r.ActualWeight,
		AIConfidence: r.AIConfidence,
		ManualReview: r.ManualReview,
		PhotoAfter:   r.PhotoAfter,
		Reject:       r.Reject,
	}
}
