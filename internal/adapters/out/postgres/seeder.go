package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

const seedShipmentCount = 10

var (
	seedStreets  = []string{"Amazing st. 5", "Main st. 42", "Ocean ave. 17", "Hill rd. 3", "Park ln. 98"}
	seedCities   = []string{"New York", "Boston", "Chicago", "Seattle", "Austin"}
	seedZips     = []string{"127675", "02101", "60601", "98101", "73301"}
	seedCarriers = []string{"Modern Shipping", "Fast Delivery", "Cargo Express"}
	seedProducts = []string{"Samsung Electronics", "Precision Screwdriver", "Leather Wallet", "Desk Lamp", "Wireless Mouse"}
)

// Seeder populates an empty shipments table with sample data for local
// development and demos.
type Seeder struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSeeder creates a seeder bound to the given database connection.
func NewSeeder(db *gorm.DB, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// Seed inserts sample shipments when the table is empty. A non-empty table is
// left untouched, so repeated startups do not accumulate data.
func (s *Seeder) Seed(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count shipments: %w", err)
	}

	if count > 0 {
		s.logger.Info("skipping seed, shipments already present", "count", count)
		return nil
	}

	repo := shipmentrepo.NewGormShipmentRepository(s.db, noopTracker{})

	for i := range seedShipmentCount {
		sample, err := sampleShipment(i)
		if err != nil {
			return fmt.Errorf("failed to build sample shipment: %w", err)
		}

		if err = repo.Add(ctx, sample); err != nil {
			return fmt.Errorf("failed to seed shipment: %w", err)
		}
	}

	s.logger.Info("seeded sample shipments", "count", seedShipmentCount)
	return nil
}

func sampleShipment(n int) (*shipment.Shipment, error) {
	address, err := kernel.NewAddress(
		seedStreets[rand.IntN(len(seedStreets))],
		seedCities[rand.IntN(len(seedCities))],
		seedZips[rand.IntN(len(seedZips))],
	)
	if err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, 1+rand.IntN(3))
	for range cap(items) {
		items = append(items, shipment.NewItem(
			seedProducts[rand.IntN(len(seedProducts))],
			1+rand.IntN(5),
		))
	}

	return shipment.NewShipment(
		fmt.Sprintf("seed-order-%d", n+1),
		address,
		seedCarriers[rand.IntN(len(seedCarriers))],
		fmt.Sprintf("receiver%d@mail.com", n+1),
		items,
	)
}

// noopTracker satisfies the repository's tracker dependency outside of a unit
// of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
