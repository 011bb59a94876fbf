package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reclaim/config"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/entity"
	domainerrors "reclaim/internal/domain/errors"
	"reclaim/internal/domain/service"
	mockUsecase "reclaim/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type pushHandlerFixtures struct {
	handler  *PushHandler
	tokenUC  *mockUsecase.MockTokenUsecase
	deviceUC *mockUsecase.MockDeviceUsecase
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	if cfg == nil {
		cfg = &config.Config{}
	}
	tokenUC := mockUsecase.NewMockTokenUsecase(t)
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return pushHandlerFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:   cfg,
			Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
			TokenUC:  tokenUC,
			DeviceUC: deviceUC,
		}),
		tokenUC:  tokenUC,
		deviceUC: deviceUC,
	}
}

func pushBody(t *testing.T, payload any) string {
	t.Helper()

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(raw)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-42"}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func doPush(h *PushHandler, body, auth string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func verifiedEvent() *service.PickupVerifiedMessage {
	return &service.PickupVerifiedMessage{
		PickupVerifiedEvent: entity.PickupVerifiedEvent{
			PickupID:    uuid.New(),
			CollectorID: uuid.New(),
			VerifiedAt:  time.Now().UTC(),
		},
	}
}

func TestPushHandler_ProcessesAndCelebrates(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	msg := verifiedEvent()
	txID := uuid.New()

	fx.tokenUC.EXPECT().
		ProcessPickupTokens(mock.Anything, msg.PickupID, uuid.Nil).
		Return(&entity.PickupRewardResult{
			CollectorID:   msg.CollectorID,
			TokensAwarded: 19,
			MilestonesAwarded: []entity.AwardedMilestone{
				{Key: "first_pickup", Tokens: 50, Description: "First verified pickup", TransactionID: txID},
			},
		}, nil)

	fx.deviceUC.EXPECT().
		NotifyCollector(mock.Anything, msg.CollectorID, "+50 tokens", "First verified pickup", map[string]string{
			"type":           "milestone",
			"milestone":      "first_pickup",
			"tokens":         "50",
			"transaction_id": txID.String(),
		}).
		Return(errors.New("fcm unavailable"))

	rec := doPush(fx.handler, pushBody(t, msg), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_CelebratesPickupOwner(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	msg := verifiedEvent()
	msg.CollectorID = uuid.Nil
	owner := uuid.New()

	fx.tokenUC.EXPECT().
		ProcessPickupTokens(mock.Anything, msg.PickupID, uuid.Nil).
		Return(&entity.PickupRewardResult{
			CollectorID:   owner,
			TokensAwarded: 19,
			MilestonesAwarded: []entity.AwardedMilestone{
				{Key: "first_pickup", Tokens: 50, Description: "First verified pickup", TransactionID: uuid.New()},
			},
		}, nil)
	fx.deviceUC.EXPECT().
		NotifyCollector(mock.Anything, owner, "+50 tokens", "First verified pickup", mock.Anything).
		Return(nil)

	rec := doPush(fx.handler, pushBody(t, msg), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RetryableFailure(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	msg := verifiedEvent()

	fx.tokenUC.EXPECT().
		ProcessPickupTokens(mock.Anything, msg.PickupID, uuid.Nil).
		Return(nil, errors.New("connection refused"))

	rec := doPush(fx.handler, pushBody(t, msg), "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_PermanentFailureIsAcked(t *testing.T) {
	fx := createTestPushHandler(t, nil)
	msg := verifiedEvent()

	fx.tokenUC.EXPECT().
		ProcessPickupTokens(mock.Anything, msg.PickupID, uuid.Nil).
		Return(nil, domainerrors.ErrPickupNotFound)

	rec := doPush(fx.handler, pushBody(t, msg), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	fx := createTestPushHandler(t, nil)

	rec := doPush(fx.handler, `{"message": {"data": "%%%not-base64"}}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doPush(fx.handler, `{"message":`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// valid envelope, payload without a pickup id
	rec = doPush(fx.handler, pushBody(t, map[string]string{"hello": "world"}), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example/push",
	}
	fx := createTestPushHandler(t, cfg)

	var gotAudience string
	fx.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
	}

	msg := verifiedEvent()
	body := pushBody(t, msg)

	assert.Equal(t, http.StatusUnauthorized, doPush(fx.handler, body, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doPush(fx.handler, body, "Bearer forged").Code)

	fx.tokenUC.EXPECT().
		ProcessPickupTokens(mock.Anything, msg.PickupID, uuid.Nil).
		Return(&entity.PickupRewardResult{AlreadyProcessed: true, TokensAwarded: 19}, nil)

	assert.Equal(t, http.StatusOK, doPush(fx.handler, body, "Bearer good").Code)
	assert.Equal(t, "https://worker.example/push", gotAudience)
}

func TestNewPushHandler_SkipsAuthInDevelop(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.PubSub = &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example/push",
	}

	fx := createTestPushHandler(t, cfg)
	assert.Empty(t, fx.handler.audience)
}
