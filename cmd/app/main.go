package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"pos/cmd"
	poshttp "pos/internal/adapters/in/http"
	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/adapters/out/postgres/lineitemrepo"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/tenderrepo"
	"pos/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateReleaseOrderNumbersCommandHandler(),
		app.NumberRetention(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		SalesTaxRate:         goDotEnvVariable("SALES_TAX_RATE"),
		NumberRetentionHours: goDotEnvVariable("NUMBER_RETENTION_HOURS"),
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&lineitemrepo.LineItemDTO{},
		&tenderrepo.TenderDTO{},
		&catalogrepo.ItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := poshttp.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateAssignOrderNumberCommandHandler(),
		app.CreateAddItemCommandHandler(),
		app.CreateSetItemQuantityCommandHandler(),
		app.CreateRemoveItemCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
