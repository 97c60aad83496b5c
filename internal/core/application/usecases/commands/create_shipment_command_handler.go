package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Enforces the one-shipment-per-order invariant and emits the ShipmentCreated
// event as part of the same business transaction.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCreateShipmentCommand("12345", addr, "Modern Shipping", "test@mail.com", items)
//
//	snapshot, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	fmt.Printf("Shipment %s created", snapshot.Number())
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence and an
// EventPublisher for the ShipmentCreated event.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the shipment creation command and returns the full
// shipment snapshot, including the generated number.
//
// The sequence is: validate, check orderId uniqueness, build the aggregate,
// insert inside the transaction, publish the event, commit. The event goes
// out before the commit makes the insert durable, so a crash in between can
// emit an event for a shipment that was never persisted. This ordering is
// intentional; downstream consumers are expected to handle at-least-once
// delivery with possible phantoms.
//
// The existence check alone cannot close the concurrent-create race, so the
// repository's unique constraint on orderId is relied on as the backstop:
// the second of two racing inserts fails with errs.ErrObjectAlreadyExists at
// Add or at Commit, and its event is never published or is orphaned per the
// hazard above.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	exists, err := repo.ExistsForOrder(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewObjectAlreadyExistsError("orderId", cmd.OrderID())
	}

	aggregate, err := shipment.NewShipment(
		cmd.OrderID(),
		cmd.Address(),
		cmd.Carrier(),
		cmd.ReceiverEmail(),
		cmd.Items(),
	)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.publisher.PublishShipmentCreated(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
