package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"reclaim/internal/domain/service"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const localSubscription = "projects/local/subscriptions/pickup-verified-sub"

// localHTTPPublisher implements EventPublisher by POSTing push envelopes
// straight to the worker, simulating Pub/Sub push delivery for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the envelope Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// PublishPickupVerified delivers the event synchronously to the worker
func (p *localHTTPPublisher) PublishPickupVerified(ctx context.Context, event *service.PickupVerifiedMessage) error {
	body, err := NewPushMessageBody(event, time.Now())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Pickup event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("pickup_id", event.PickupID.String()),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// NewPushMessageBody wraps the event the way a push subscription would.
func NewPushMessageBody(event *service.PickupVerifiedMessage, publishedAt time.Time) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	push.Message.MessageID = event.PickupID.String()
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	push.Message.Attributes = messageAttributes(event)

	body, err := json.Marshal(push)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

func messageAttributes(event *service.PickupVerifiedMessage) map[string]string {
	attributes := map[string]string{
		"pickup_id":    event.PickupID.String(),
		"collector_id": event.CollectorID.String(),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
