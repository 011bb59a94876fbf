package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"reclaim/internal/delivery/api/middleware"
	"reclaim/internal/delivery/api/response"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const csvContentType = "text/csv; charset=utf-8"

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler exposes the caller's own ledger.
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

type BalanceResponse struct {
	CollectorID uuid.UUID `json:"collector_id"`
	Balance     int64     `json:"balance"`
}

// GetBalance sums the caller's ledger.
func (h *TokenHandler) GetBalance(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	balance, err := h.tokenUC.GetTokenBalance(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BalanceResponse{CollectorID: collectorID, Balance: balance})
}

// GetTransactions lists the caller's ledger, newest first.
// Query: limit, offset, type, source, from, to (RFC3339).
func (h *TokenHandler) GetTransactions(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter, err := bindTransactionFilter(c, collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.tokenUC.GetTransactionHistory(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// GetNextMilestone returns null data once every milestone is reached.
func (h *TokenHandler) GetNextMilestone(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	progress, err := h.tokenUC.GetNextMilestone(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, progress)
}

// Recalculate rebuilds the caller's cached balance.
func (h *TokenHandler) Recalculate(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return recalculate(c, h.tokenUC, collectorID)
}

// ExportTransactions downloads the caller's ledger as CSV.
func (h *TokenHandler) ExportTransactions(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	export, err := h.tokenUC.ExportTransactions(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header := c.Response().Header()
	header.Set(constants.HeaderChecksum, export.Checksum)
	header.Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="ledger-%s.csv"`, collectorID))

	return c.Blob(http.StatusOK, csvContentType, export.Data)
}

func recalculate(c echo.Context, tokenUC usecase.TokenUsecase, collectorID uuid.UUID) error {
	balance, err := tokenUC.RecalculateTokenBalance(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, BalanceResponse{CollectorID: collectorID, Balance: balance})
}

func bindTransactionFilter(c echo.Context, collectorID uuid.UUID) (entity.TransactionFilter, error) {
	filter := entity.TransactionFilter{CollectorID: collectorID}

	var from, to time.Time
	err := echo.QueryParamsBinder(c).
		Int("limit", &filter.Limit).
		Int("offset", &filter.Offset).
		Time("from", &from, time.RFC3339).
		Time("to", &to, time.RFC3339).
		BindError()
	if err != nil {
		return filter, domainerrors.ErrValidationFailed.WithDetails(queryErrorDetails(err))
	}

	if v := c.QueryParam("type"); v != "" {
		t := entity.TransactionType(v)
		filter.Type = &t
	}
	if v := c.QueryParam("source"); v != "" {
		s := entity.TransactionSource(v)
		filter.Source = &s
	}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	return filter, nil
}

func queryErrorDetails(err error) string {
	var be *echo.BindingError
	if errors.As(err, &be) {
		return "invalid query parameter " + strconv.Quote(be.Field)
	}

	return err.Error()
}
