// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetShipmentByNumberQueryIsNotConstructed = errors.New(
		"GetShipmentByNumberQuery must be created via NewGetShipmentByNumberQuery constructor",
	)
)

// GetShipmentByNumberQuery retrieves a single shipment by its external number.
//
// Example:
//
//	query, err := NewGetShipmentByNumberQuery("40001234")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetShipmentByNumberQueryHandler(db)
//
//	shipment, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get shipment: %w", err)
//	}
//	if shipment == nil {
//	    // no shipment with that number
//	}
type GetShipmentByNumberQuery struct { //nolint:recvcheck //using for validation
	number string

	guard guard.ConstructorGuard
}

// NewGetShipmentByNumberQuery creates a query for a single shipment lookup.
// The number must not be empty.
func NewGetShipmentByNumberQuery(number string) (GetShipmentByNumberQuery, error) {
	if number == "" {
		return GetShipmentByNumberQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetShipmentByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByNumberQueryIsNotConstructed if validation fails.
func (q GetShipmentByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByNumberQueryIsNotConstructed)
}

// Number returns the shipment number to look up.
func (q GetShipmentByNumberQuery) Number() string {
	return q.number
}

// ShipmentItemResponse represents one ordered product line in the read model.
type ShipmentItemResponse struct {
	Product  string
	Quantity int
}

// GetShipmentByNumberQueryResponse is the full shipment snapshot returned to
// callers of the lookup query.
type GetShipmentByNumberQueryResponse struct {
	ID            kernel.UUID
	Number        string
	OrderID       string
	Address       kernel.Address
	Carrier       string
	ReceiverEmail string
	Status        shipment.Status
	Items         []ShipmentItemResponse
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
