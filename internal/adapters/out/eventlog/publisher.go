// Package eventlog provides a structured-log implementation of the order
// event publisher port. Until a message broker joins the deployment, the
// event stream is materialized as log records that downstream tooling can
// tail and ship.
package eventlog

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
)

// Publisher writes order lifecycle events to a structured logger.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a Publisher writing to the given logger.
// A nil logger falls back to slog.Default().
func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger}
}

// Publish records the event with the order attributes collaborating services
// key on. Never fails; a log sink has no delivery acknowledgement.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	aggregate := event.Order()

	p.logger.InfoContext(ctx, "order event",
		slog.String("event", event.Name()),
		slog.String("order_id", aggregate.ID().String()),
		slog.String("tracking_id", aggregate.TrackingID().String()),
		slog.String("status", aggregate.Status().String()),
		slog.String("price", aggregate.Price().String()),
		slog.Time("occurred_at", event.OccurredAt()),
	)

	return nil
}
