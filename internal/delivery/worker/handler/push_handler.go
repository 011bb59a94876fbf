package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"reclaim/config"
	deliverycontext "reclaim/internal/delivery/context"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/service"
	"reclaim/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler pays out verified pickups delivered by Pub/Sub push
type PushHandler struct {
	audience      string
	validateToken tokenValidator
	logger        *slog.Logger
	tokenUC       usecase.TokenUsecase
	deviceUC      usecase.DeviceUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	TokenUC  usecase.TokenUsecase
	DeviceUC usecase.DeviceUsecase `optional:"true"`
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth is checked only for Google deliveries outside development
	var audience string
	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		audience = params.Config.PubSub.PushAudience
	}

	return &PushHandler{
		audience:      audience,
		validateToken: idtoken.Validate,
		logger:        params.Logger,
		tokenUC:       params.TokenUC,
		deviceUC:      params.DeviceUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.audience != "" {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var msg service.PickupVerifiedMessage
	if err := json.Unmarshal(data, &msg); err != nil || msg.PickupID == uuid.Nil {
		// Redelivery cannot fix a bad payload, ack it
		h.logger.Error("[Worker] Failed to parse pickup event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing pickup event",
		slog.String("pickup_id", msg.PickupID.String()),
		slog.String("collector_id", msg.CollectorID.String()),
	)

	if err := h.processPickup(ctx, &msg); err != nil {
		reqLogger.Error("[Worker] Failed to process pickup event",
			slog.String("pickup_id", msg.PickupID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, msg *service.PickupVerifiedMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if msg.RequestID != "" {
		return msg.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processPickup pays the pickup and celebrates any milestone it crossed.
func (h *PushHandler) processPickup(ctx context.Context, msg *service.PickupVerifiedMessage) error {
	// The stored pickup is authoritative for ownership
	result, err := h.tokenUC.ProcessPickupTokens(ctx, msg.PickupID, uuid.Nil)
	if err != nil {
		if isPermanent(err) {
			return errors.WithStack(err)
		}

		return newRetryableError(errors.WithStack(err))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Pickup tokens processed",
		slog.String("pickup_id", msg.PickupID.String()),
		slog.Int64("tokens", result.TokensAwarded),
		slog.Int("milestones", len(result.MilestonesAwarded)),
		slog.Bool("already_processed", result.AlreadyProcessed),
	)

	if result.CollectorID != msg.CollectorID {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Event collector differs from pickup owner",
			slog.String("event_collector_id", msg.CollectorID.String()),
			slog.String("collector_id", result.CollectorID.String()))
	}

	h.celebrate(ctx, result.CollectorID, result.MilestonesAwarded)

	return nil
}

// celebrate pushes one notification per milestone; failures never trigger a retry
// because the ledger write has already committed.
func (h *PushHandler) celebrate(ctx context.Context, collectorID uuid.UUID, milestones []entity.AwardedMilestone) {
	if h.deviceUC == nil || collectorID == uuid.Nil {
		return
	}

	for _, m := range milestones {
		data := map[string]string{
			"type":           "milestone",
			"milestone":      m.Key,
			"tokens":         strconv.FormatInt(m.Tokens, 10),
			"transaction_id": m.TransactionID.String(),
		}
		title := fmt.Sprintf("+%d tokens", m.Tokens)
		if err := h.deviceUC.NotifyCollector(ctx, collectorID, title, m.Description, data); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Milestone push failed",
				slog.String("milestone", m.Key),
				slog.Any("error", err))
		}
	}
}

// isPermanent reports client-side failures that redelivery cannot fix.
func isPermanent(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.HTTPCode() >= 400 && appErr.HTTPCode() < 500
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	payload, err := h.validateToken(req.Context(), token, h.audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
