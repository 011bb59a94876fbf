package pubsub

import (
	"context"
	"log/slog"

	"reclaim/config"
	"reclaim/internal/domain/constants"
	"reclaim/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrPublishingDisabled tells callers to pay the pickup inline instead.
var ErrPublishingDisabled = errors.New("pickup event publishing is disabled")

// inlinePublisher stands in when verified pickups are paid synchronously.
type inlinePublisher struct {
	logger *slog.Logger
}

func (p *inlinePublisher) PublishPickupVerified(ctx context.Context, msg *service.PickupVerifiedMessage) error {
	p.logger.DebugContext(ctx, "Pickup event not queued, paying inline",
		slog.String("pickup_id", msg.PickupID.String()),
		slog.String("collector_id", msg.CollectorID.String()),
	)

	return ErrPublishingDisabled
}

func (p *inlinePublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the transport for pickup-verified events. Publishing only
// happens when rewards.asyncProcessing is on and a provider is configured.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := openPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing pickup event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	async := cfg.Rewards != nil && cfg.Rewards.AsyncProcessing
	ps := cfg.PubSub
	if ps == nil || ps.Provider == "" || !async {
		logger.Info("Verified pickups are paid inline",
			slog.Bool("async_processing", async))

		return &inlinePublisher{logger: logger}, nil
	}

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		if ps.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Pickup events go to the local ledger worker",
			slog.String("endpoint", ps.LocalEndpoint))

		return NewLocalHTTPPublisher(ps.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Pickup events go to Google Pub/Sub",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID))

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
