// Package service defines interfaces for infrastructure the use cases depend on.
package service

import (
	"context"

	"reclaim/internal/domain/entity"
)

// PickupVerifiedMessage is the envelope published for the ledger worker.
type PickupVerifiedMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	entity.PickupVerifiedEvent
}

// EventPublisher publishes ledger work to a message queue
type EventPublisher interface {
	// PublishPickupVerified queues token processing for a verified pickup
	PublishPickupVerified(ctx context.Context, msg *PickupVerifiedMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
