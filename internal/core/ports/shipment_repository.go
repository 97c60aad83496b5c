package ports

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// The store is the single source of truth and the only synchronization point:
// it must enforce orderId uniqueness itself (a unique constraint or
// equivalent), because the application-level existence check alone is a
// check-then-act race under concurrent creates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate together with its items.
	// The insert is atomic: the shipment and its items become visible
	// together or not at all. A second insert for the same orderId must
	// fail with errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists the current status and updatedAt of an existing shipment.
	// Items are immutable after creation and are not written here.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// GetByNumber retrieves a shipment by its external number, including its
	// items in insertion order. Returns errs.ErrObjectNotFound when no
	// shipment carries the number.
	GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error)

	// ExistsForOrder reports whether any shipment already originates from the
	// given order.
	ExistsForOrder(ctx context.Context, orderID string) (bool, error)
}
