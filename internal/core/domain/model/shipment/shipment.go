package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment or RestoreShipment factory methods. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment represents a shipment record in the system. It is the aggregate root
// that manages the shipment lifecycle from registration through status changes
// until delivery or cancellation.
//
// Shipment follows these invariants:
//   - At most one shipment exists per originating order; the orderId never frees up
//   - The number is assigned once at creation and is the external lookup key
//   - The items list is non-empty at creation and never mutated afterwards
//   - createdAt is set once at creation; updatedAt stays nil until the first
//     status change and is refreshed on every subsequent one
//   - Can only be created through NewShipment or RestoreShipment
//
// Status transitions are deliberately unrestricted: any enumerated status may
// follow any other.
type Shipment struct {
	// id is the internal unique identifier for the shipment
	id kernel.UUID

	// number is the externally visible, immutable shipment number
	number string

	// orderID is the originating order, unique across all shipments
	orderID string

	// address is the delivery destination
	address kernel.Address

	// carrier is the shipping company responsible for delivery
	carrier string

	// receiverEmail is the contact address of the receiver
	receiverEmail string

	// status is the current state in the shipment lifecycle
	status Status

	// items are the product lines of the shipment, in insertion order
	items []Item

	// createdAt is the UTC creation timestamp, immutable
	createdAt time.Time

	// updatedAt is nil until the first status change
	updatedAt *time.Time

	// isConstructed ensures the shipment was created via a factory method
	isConstructed bool
}

// NewShipment creates a new Shipment for the given order with validation.
// A fresh internal id and external number are generated, status starts at
// Created, createdAt is set to the current UTC time, and updatedAt is nil.
//
// All field validation happens before anything else: a violation returns the
// joined per-field validation errors and no shipment is produced.
//
// Example:
//
//	addr, _ := kernel.NewAddress("Amazing st. 5", "New York", "127675")
//	items := []shipment.Item{shipment.NewItem("Samsung Electronics", 1)}
//	s, err := shipment.NewShipment("12345", addr, "Modern Shipping", "test@mail.com", items)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(
	orderID string,
	address kernel.Address,
	carrier string,
	receiverEmail string,
	items []Item,
) (*Shipment, error) {
	s := &Shipment{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setOrderID(orderID),
		s.setAddress(address),
		s.setCarrier(carrier),
		s.setReceiverEmail(receiverEmail),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	s.id = kernel.NewUUID()
	s.number = GenerateNumber()

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state.
// Unlike NewShipment it accepts the already assigned id, number, and
// timestamps; it still validates the address, status, and required fields so
// corrupted rows fail loudly instead of producing a half-valid aggregate.
func RestoreShipment(
	id kernel.UUID,
	number string,
	orderID string,
	address kernel.Address,
	carrier string,
	receiverEmail string,
	status Status,
	items []Item,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setOrderID(orderID),
		s.setAddress(address),
		s.setCarrier(carrier),
		s.setReceiverEmail(receiverEmail),
		s.setStatus(status),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their internal identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's internal unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the externally visible shipment number.
func (s *Shipment) Number() string {
	return s.number
}

// OrderID returns the originating order identifier.
func (s *Shipment) OrderID() string {
	return s.orderID
}

// Address returns the delivery destination.
func (s *Shipment) Address() kernel.Address {
	return s.address
}

// Carrier returns the shipping company responsible for delivery.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// ReceiverEmail returns the receiver's contact address.
func (s *Shipment) ReceiverEmail() string {
	return s.receiverEmail
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Items returns the shipment's product lines in insertion order.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (s *Shipment) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// CreatedAt returns the UTC creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the time of the last status change, or nil if the status
// has never changed since creation.
func (s *Shipment) UpdatedAt() *time.Time {
	return s.updatedAt
}

// ChangeStatus sets the shipment status to the requested value and stamps
// updatedAt with the current UTC time.
//
// There is no legality check against the previous status: the transition
// model is intentionally open, so Delivered may be followed by InTransit if a
// carrier reports out of order. The only rejection is a status value outside
// the enumeration.
func (s *Shipment) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.status = status
	s.updatedAt = &now
	return nil
}

// setID validates and sets the shipment's internal identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setNumber validates and sets the external shipment number.
// This is a private method used only during restoration.
func (s *Shipment) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	s.number = number
	return nil
}

// setStatus validates and sets the status during restoration.
func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValidationError("OrderId", "OrderId must not be empty")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

func (s *Shipment) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValidationError("Carrier", "Carrier must not be empty")
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setReceiverEmail(receiverEmail string) error {
	if receiverEmail == "" {
		return errs.NewValidationError("ReceiverEmail", "ReceiverEmail must not be empty")
	}
	s.receiverEmail = receiverEmail
	return nil
}

func (s *Shipment) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValidationError("Items", "Items list must not be empty")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
