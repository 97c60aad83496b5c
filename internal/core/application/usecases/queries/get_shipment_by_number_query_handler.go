package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentByNumberQueryHandler reads shipment snapshots straight from the
// database, bypassing the domain aggregate.
//
// Example:
//
//	handler := NewGetShipmentByNumberQueryHandler(db)
//	query, _ := NewGetShipmentByNumberQuery("40001234")
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if snapshot == nil {
//	    return echo.NewHTTPError(http.StatusNotFound)
//	}
type GetShipmentByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByNumberQueryHandler creates a handler for shipment lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentByNumberQueryHandler(db *gorm.DB) GetShipmentByNumberQueryHandler {
	return GetShipmentByNumberQueryHandler{db: db}
}

// Handle executes the lookup. An unknown number is not an error on the read
// path: the handler returns (nil, nil) and leaves the response shape to the
// caller. Items come back in insertion order.
func (h GetShipmentByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByNumberQuery,
) (*GetShipmentByNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			order_id,
			address_street,
			address_city,
			address_zip,
			carrier,
			receiver_email,
			status,
			created_at,
			updated_at
		FROM shipments
		WHERE number = ?
	`, query.Number()).Row()

	var (
		id            uuid.UUID
		number        string
		orderID       string
		street        string
		city          string
		zip           string
		carrier       string
		receiverEmail string
		status        int
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&id,
		&number,
		&orderID,
		&street,
		&city,
		&zip,
		&carrier,
		&receiverEmail,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(street, city, zip)
	if err != nil {
		return nil, err
	}

	items, err := h.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &GetShipmentByNumberQueryResponse{
		ID:            shipmentID,
		Number:        number,
		OrderID:       orderID,
		Address:       address,
		Carrier:       carrier,
		ReceiverEmail: receiverEmail,
		Status:        shipment.Status(status),
		Items:         items,
		CreatedAt:     createdAt.Time,
	}
	if updatedAt.Valid {
		resp.UpdatedAt = &updatedAt.Time
	}

	return resp, nil
}

func (h GetShipmentByNumberQueryHandler) loadItems(
	ctx context.Context,
	shipmentID uuid.UUID,
) ([]ShipmentItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product,
			quantity
		FROM shipment_items
		WHERE shipment_id = ?
		ORDER BY id
	`, shipmentID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ShipmentItemResponse, 0)
	for rows.Next() {
		var item ShipmentItemResponse
		if err = rows.Scan(&item.Product, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
