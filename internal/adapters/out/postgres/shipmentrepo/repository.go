package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment and its items to the database.
// A violated unique index on order_id or number surfaces as
// errs.ErrObjectAlreadyExists, which closes the race between the existence
// check and the insert. Requires gorm's TranslateError to be enabled on the
// connection.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The translated error does not say which unique index fired:
			// order_id on a concurrent create for the same order, or a
			// number collision. Name both candidate keys.
			return errs.NewObjectAlreadyExistsErrorWithCause("orderId/number",
				fmt.Sprintf("%s/%s", aggregate.OrderID(), aggregate.Number()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Items are immutable
// after creation, so only the shipment row is written.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByNumber retrieves a shipment by its external number, items included.
func (r *GormShipmentRepository) GetByNumber(ctx context.Context, number string) (*shipment.Shipment, error) {
	if number == "" {
		return nil, errs.NewValueIsRequiredError("number")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("shipment_items.id")
		}).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentNumber", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForOrder reports whether any shipment was already created for the order.
func (r *GormShipmentRepository) ExistsForOrder(ctx context.Context, orderID string) (bool, error) {
	if orderID == "" {
		return false, errs.NewValueIsRequiredError("orderId")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
