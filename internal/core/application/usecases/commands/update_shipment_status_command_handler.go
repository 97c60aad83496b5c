package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// UpdateShipmentStatusCommandHandler handles shipment status updates.
// Looks the shipment up by its external number, applies the new status, and
// emits the ShipmentStatusUpdated event within the same business transaction.
//
// Status updates are read-modify-write without optimistic or pessimistic
// concurrency control: two concurrent updates to the same shipment resolve
// last-write-wins, and each emits its own event.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateShipmentStatusCommandHandler creates a handler for status update operations.
func NewUpdateShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	publisher ports.EventPublisher,
) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command. Success carries no payload
// beyond the nil error.
//
// An unknown number fails with errs.ErrObjectNotFound before any mutation or
// event. On success the event is published before the commit makes the write
// durable, the same intentional ordering as shipment creation.
func (h *UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()

	aggregate, err := repo.GetByNumber(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.publisher.PublishShipmentStatusUpdated(ctx, aggregate.Number(), aggregate.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
