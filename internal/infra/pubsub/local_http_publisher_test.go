package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reclaim/internal/domain/entity"
	"reclaim/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessage() *service.PickupVerifiedMessage {
	return &service.PickupVerifiedMessage{
		RequestID: "req-1",
		PickupVerifiedEvent: entity.PickupVerifiedEvent{
			PickupID:    uuid.New(),
			CollectorID: uuid.New(),
			VerifiedAt:  time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestNewPushMessageBody(t *testing.T) {
	msg := newTestMessage()

	body, err := NewPushMessageBody(msg, time.Date(2026, 5, 1, 9, 31, 0, 0, time.UTC))
	require.NoError(t, err)

	var push PushMessage
	require.NoError(t, json.Unmarshal(body, &push))
	assert.Equal(t, msg.PickupID.String(), push.Message.MessageID)
	assert.Equal(t, "2026-05-01T09:31:00Z", push.Message.PublishTime)
	assert.Equal(t, msg.CollectorID.String(), push.Message.Attributes["collector_id"])
	assert.Equal(t, "req-1", push.Message.Attributes["request_id"])

	raw, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)
	var decoded service.PickupVerifiedMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, msg.PickupID, decoded.PickupID)
	assert.Equal(t, msg.CollectorID, decoded.CollectorID)
	assert.True(t, msg.VerifiedAt.Equal(decoded.VerifiedAt))
}

func TestLocalHTTPPublisher_PublishPickupVerified(t *testing.T) {
	var gotBody []byte
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-Id")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	msg := newTestMessage()

	require.NoError(t, publisher.PublishPickupVerified(context.Background(), msg))
	assert.Equal(t, "req-1", gotRequestID)
	assert.Contains(t, string(gotBody), localSubscription)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishPickupVerified(context.Background(), newTestMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
