package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// EventPublisher delivers domain events to external subscribers with
// at-least-once semantics. Publishing is sequenced, not fire-and-forget:
// command handlers wait for the publish call to be accepted before committing
// the corresponding store mutation. A crash between publish and commit can
// therefore produce an event for state that was never persisted; consumers
// must tolerate phantom and duplicate events.
type EventPublisher interface {
	// PublishShipmentCreated emits a full snapshot of a freshly created shipment.
	PublishShipmentCreated(ctx context.Context, aggregate *shipment.Shipment) error

	// PublishShipmentStatusUpdated emits the shipment number and its new status.
	PublishShipmentStatusUpdated(ctx context.Context, number string, status shipment.Status) error
}
