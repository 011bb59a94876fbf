package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// WithCollector records the authenticated collector and tags the request logger with it,
// so every ledger and pickup log line of the request names whose tokens moved.
func WithCollector(ctx context.Context, collectorID uuid.UUID, fallback *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, KeyCollectorID, collectorID)
	if logger := GetLoggerOrDefault(ctx, fallback); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("collector_id", collectorID.String())))
	}

	return ctx
}

// GetCollectorID returns the collector set by WithCollector.
func GetCollectorID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyCollectorID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}
