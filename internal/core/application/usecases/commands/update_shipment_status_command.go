package commands

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a request to move a shipment to a
// new status. The status has already been decoded at the boundary; a value
// outside the enumeration never reaches the handler.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	number string
	status shipment.Status

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command to update a shipment's status.
// Validates that the number is not empty and the status is a member of the
// enumeration.
func NewUpdateShipmentStatusCommand(number string, status shipment.Status) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setStatus(status),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentStatusCommandIsNotConstructed if validation fails.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// Number returns the external shipment number to update.
func (c UpdateShipmentStatusCommand) Number() string {
	return c.number
}

// Status returns the target status.
func (c UpdateShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *UpdateShipmentStatusCommand) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}

	c.number = number
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
