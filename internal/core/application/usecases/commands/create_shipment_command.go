package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to register a shipment for an
// order. Encapsulates the originating order, destination address, carrier,
// receiver contact, and the product lines to ship.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Amazing st. 5", "New York", "127675")
//	items := []shipment.Item{shipment.NewItem("Samsung Electronics", 1)}
//	cmd, err := NewCreateShipmentCommand("12345", addr, "Modern Shipping", "test@mail.com", items)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, publisher)
//	snapshot, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	address       kernel.Address
	carrier       string
	receiverEmail string
	items         []shipment.Item

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Every input field is validated before any mutation can happen; violations
// are joined so the caller sees all offending fields at once, each with its
// client-facing message.
func NewCreateShipmentCommand(
	orderID string,
	address kernel.Address,
	carrier string,
	receiverEmail string,
	items []shipment.Item,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAddress(address),
		cmd.setCarrier(carrier),
		cmd.setReceiverEmail(receiverEmail),
		cmd.setItems(items),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the originating order identifier.
func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}

// Address returns the delivery destination.
func (c CreateShipmentCommand) Address() kernel.Address {
	return c.address
}

// Carrier returns the shipping company name.
func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

// ReceiverEmail returns the receiver's contact address.
func (c CreateShipmentCommand) ReceiverEmail() string {
	return c.receiverEmail
}

// Items returns the product lines to ship.
func (c CreateShipmentCommand) Items() []shipment.Item {
	return c.items
}

func (c *CreateShipmentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValidationError("OrderId", "OrderId must not be empty")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}

func (c *CreateShipmentCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValidationError("Carrier", "Carrier must not be empty")
	}

	c.carrier = carrier
	return nil
}

func (c *CreateShipmentCommand) setReceiverEmail(receiverEmail string) error {
	if receiverEmail == "" {
		return errs.NewValidationError("ReceiverEmail", "ReceiverEmail must not be empty")
	}

	c.receiverEmail = receiverEmail
	return nil
}

func (c *CreateShipmentCommand) setItems(items []shipment.Item) error {
	if len(items) == 0 {
		return errs.NewValidationError("Items", "Items list must not be empty")
	}

	c.items = items
	return nil
}
