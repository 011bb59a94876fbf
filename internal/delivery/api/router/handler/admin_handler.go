package handler

import (
	"log/slog"
	"net/http"

	"reclaim/internal/delivery/api/middleware"
	"reclaim/internal/delivery/api/response"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// AdminHandler serves ledger maintenance for operators.
type AdminHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// AwardRequest is a manual ledger adjustment. Amount is signed.
type AwardRequest struct {
	CollectorID uuid.UUID `json:"collector_id" validate:"required"`
	Amount      int64     `json:"amount" validate:"ne=0"`
	Source      string    `json:"source" validate:"required,oneof=bonus penalty referral redemption"`
	Description string    `json:"description" validate:"max=255"`
	Reason      string    `json:"reason"`
	Reference   string    `json:"reference"`
}

type ExportRequest struct {
	CollectorID uuid.UUID `json:"collector_id" validate:"required"`
}

type ExportResponse struct {
	Location string `json:"location"`
	Checksum string `json:"checksum"`
	Rows     int    `json:"rows"`
}

// AwardTokens writes a manual adjustment; a would-be-negative balance answers 422.
func (h *AdminHandler) AwardTokens(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AwardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid award input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	source := entity.TransactionSource(req.Source)
	result, err := h.tokenUC.AwardTokens(c.Request().Context(), &usecase.AwardInput{
		CollectorID: req.CollectorID,
		Amount:      req.Amount,
		Source:      source,
		Description: req.Description,
		Metadata: entity.AdjustmentMetadata{
			Kind:      source,
			Reason:    req.Reason,
			IssuedBy:  &adminID,
			Reference: req.Reference,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if !result.Success {
		return response.HandleAppError(c, domainerrors.ErrInsufficientBalance)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ReprocessPickup re-runs token processing for a verified pickup; repeats are no-ops.
func (h *AdminHandler) ReprocessPickup(c echo.Context) error {
	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pickup ID")
	}

	result, err := h.tokenUC.ProcessPickupTokens(c.Request().Context(), pickupID, uuid.Nil)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RecalculateCollector rebuilds another collector's cached balance.
func (h *AdminHandler) RecalculateCollector(c echo.Context) error {
	collectorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid collector ID")
	}

	return recalculate(c, h.tokenUC, collectorID)
}

// ArchiveTransactions writes a CSV snapshot of a collector's ledger to the bucket.
func (h *AdminHandler) ArchiveTransactions(c echo.Context) error {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid export input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	export, err := h.tokenUC.ArchiveTransactions(c.Request().Context(), req.CollectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, ExportResponse{
		Location: export.Location,
		Checksum: export.Checksum,
		Rows:     export.Rows,
	})
}
