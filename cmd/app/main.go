package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"shipping/cmd"
	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/generated/servers"
	"shipping/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.SeedData {
		if err := app.CreateSeeder().Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	jobManager := jobs.NewJobManager(app.CreateGetUncompletedShipmentsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                        goDotEnvVariable("HTTP_PORT"),
		DBHost:                          goDotEnvVariable("DB_HOST"),
		DBPort:                          goDotEnvVariable("DB_PORT"),
		DBUser:                          goDotEnvVariable("DB_USER"),
		DBPassword:                      goDotEnvVariable("DB_PASSWORD"),
		DBName:                          goDotEnvVariable("DB_NAME"),
		DBSslMode:                       goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                       goDotEnvVariable("KAFKA_HOST"),
		KafkaShipmentCreatedTopic:       goDotEnvVariable("KAFKA_SHIPMENT_CREATED_TOPIC"),
		KafkaShipmentStatusUpdatedTopic: goDotEnvVariable("KAFKA_SHIPMENT_STATUS_UPDATED_TOPIC"),
		SeedData:                        goDotEnvVariable("SEED_DATA") == "true",
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	// TranslateError turns unique index violations into gorm.ErrDuplicatedKey,
	// which the repository relies on for duplicate order detection.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}, &shipmentrepo.ShipmentItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateShipmentCommandHandler(),
		app.CreateUpdateShipmentStatusCommandHandler(),
		app.CreateGetShipmentByNumberQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
