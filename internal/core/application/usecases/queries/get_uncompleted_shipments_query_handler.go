package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetUncompletedShipmentsQueryHandler retrieves in-flight shipments from the
// database. Filters out terminal statuses to show the active workload.
type GetUncompletedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedShipmentsQueryHandler creates a handler for in-flight shipment queries.
// Requires a GORM database connection for query execution.
func NewGetUncompletedShipmentsQueryHandler(db *gorm.DB) GetUncompletedShipmentsQueryHandler {
	return GetUncompletedShipmentsQueryHandler{db: db}
}

// Handle executes the query. Returns shipments in any non-terminal status,
// sorted by number for consistent output.
func (h GetUncompletedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedShipmentsQuery,
) ([]GetUncompletedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUncompletedShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			status
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY number
	`, shipment.Delivered, shipment.Cancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedShipmentsQueryResponse
		var status int

		if err = rows.Scan(&resp.Number, &status); err != nil {
			return nil, err
		}

		resp.Status = shipment.Status(status)
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
