package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"reclaim/config"
	"reclaim/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOpenPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name       string
		async      bool
		pubsub     *config.PubSubConfig
		wantInline bool
		wantErr    bool
	}{
		{name: "no provider", async: true, pubsub: &config.PubSubConfig{}, wantInline: true},
		{name: "async off", async: false, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, wantInline: true},
		{name: "local", async: true, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", async: true, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without topic", async: true, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", async: true, pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Rewards: &config.RewardsConfig{AsyncProcessing: tt.async}, PubSub: tt.pubsub}

			publisher, err := openPublisher(context.Background(), cfg, logger)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			_, inline := publisher.(*inlinePublisher)
			assert.Equal(t, tt.wantInline, inline)
		})
	}
}

func TestInlinePublisher_AsksForInlinePayment(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	err = publisher.PublishPickupVerified(context.Background(), newTestMessage())
	assert.ErrorIs(t, err, ErrPublishingDisabled)

	lc.RequireStart().RequireStop()
}
