package queries

import (
	"errors"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetUncompletedShipmentsQueryIsNotConstructed = errors.New(
		"GetUncompletedShipmentsQuery must be created via NewGetUncompletedShipmentsQuery constructor",
	)
)

// GetUncompletedShipmentsQuery retrieves all shipments still in flight.
// Returns shipments that have not reached the Delivered or Cancelled status,
// used for operational reporting.
type GetUncompletedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedShipmentsQuery creates a query to retrieve in-flight shipments.
// This is a parameterless query.
func NewGetUncompletedShipmentsQuery() GetUncompletedShipmentsQuery {
	return GetUncompletedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedShipmentsQueryIsNotConstructed if validation fails.
func (q GetUncompletedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedShipmentsQueryIsNotConstructed)
}

// GetUncompletedShipmentsQueryResponse represents one in-flight shipment in
// the report read model.
type GetUncompletedShipmentsQueryResponse struct {
	Number string
	Status shipment.Status
}
