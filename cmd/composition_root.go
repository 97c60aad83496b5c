package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/kafka"
	"shipping/internal/adapters/out/noop"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var publisher ports.EventPublisher = noop.NewPublisher(logger)
	if config.KafkaHost != "" {
		publisher = kafka.NewPublisher(
			config.KafkaHost,
			config.KafkaShipmentCreatedTopic,
			config.KafkaShipmentStatusUpdatedTopic,
		)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetShipmentByNumberQueryHandler() queries.GetShipmentByNumberQueryHandler {
	return queries.NewGetShipmentByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedShipmentsQueryHandler() queries.GetUncompletedShipmentsQueryHandler {
	return queries.NewGetUncompletedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSeeder() *postgres.Seeder {
	return postgres.NewSeeder(c.gormDB, c.logger)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
