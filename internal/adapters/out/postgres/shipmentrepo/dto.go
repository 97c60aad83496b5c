// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The unique indexes on number and order_id back the application-level
// uniqueness checks: a concurrent duplicate insert fails at the database even
// when both requests pass the existence check.
//
// Timestamps are owned by the domain model, so GORM's automatic tracking is
// disabled for them.
type ShipmentDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number        string     `gorm:"uniqueIndex"`
	OrderID       string     `gorm:"uniqueIndex"`
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Carrier       string
	ReceiverEmail string
	Status        int
	CreatedAt     time.Time         `gorm:"autoCreateTime:false;autoUpdateTime:false"`
	UpdatedAt     *time.Time        `gorm:"autoUpdateTime:false"`
	Items         []ShipmentItemDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents the embedded receiver address within the shipment table.
type AddressDTO struct {
	Street string
	City   string
	Zip    string
}

// ShipmentItemDTO represents one ordered product line belonging to a shipment.
// The auto-incremented ID preserves insertion order for reads.
type ShipmentItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Product    string
	Quantity   int
}

// TableName specifies the database table name for shipment item entities.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	items := aggregate.Items()
	itemDTOs := make([]ShipmentItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ShipmentItemDTO{
			ShipmentID: aggregate.ID().Bytes(),
			Product:    item.Product(),
			Quantity:   item.Quantity(),
		})
	}

	return ShipmentDTO{
		ID:      aggregate.ID().Bytes(),
		Number:  aggregate.Number(),
		OrderID: aggregate.OrderID(),
		Address: AddressDTO{
			Street: aggregate.Address().Street(),
			City:   aggregate.Address().City(),
			Zip:    aggregate.Address().Zip(),
		},
		Carrier:       aggregate.Carrier(),
		ReceiverEmail: aggregate.ReceiverEmail(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including items using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Zip)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		items = append(items, shipment.NewItem(itemDTO.Product, itemDTO.Quantity))
	}

	return shipment.RestoreShipment(
		id,
		dto.Number,
		dto.OrderID,
		address,
		dto.Carrier,
		dto.ReceiverEmail,
		shipment.Status(dto.Status),
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
