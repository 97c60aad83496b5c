// Package noop provides a no-op EventPublisher used when Kafka is not configured.
package noop

import (
	"context"
	"log/slog"

	"shipping/internal/core/domain/model/shipment"
)

// Publisher discards all events. Each discard is logged at debug level so a
// deployment running without a broker stays visible in the logs.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a discarding publisher that reports through the given logger.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		logger: logger.With("component", "noop_publisher"),
	}
}

func (p *Publisher) PublishShipmentCreated(_ context.Context, aggregate *shipment.Shipment) error {
	p.logger.Debug("event discarded, no broker configured",
		"event", "shipment.created",
		"number", aggregate.Number(),
	)
	return nil
}

func (p *Publisher) PublishShipmentStatusUpdated(_ context.Context, number string, status shipment.Status) error {
	p.logger.Debug("event discarded, no broker configured",
		"event", "shipment.status_updated",
		"number", number,
		"status", status.String(),
	)
	return nil
}
