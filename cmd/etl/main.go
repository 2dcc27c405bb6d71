package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/database/postgres"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/repository"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/infrastructure/sourcefile"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/api"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/config"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/scheduler"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/calendar"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/loading"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/merging"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/reconciling"
	"github.com/DheerajMSM/Retail-Sales-Data-Warehouse/internal/usecases/staging"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	stagingRepo := repository.NewStagingRepository()
	dimensionRepo := repository.NewDimensionRepository()
	dateDimRepo := repository.NewDateDimensionRepository()
	factRepo := repository.NewFactSalesRepository()
	loadRunRepo := repository.NewLoadRunRepository()

	intakeService := staging.NewService(stagingRepo, staging.ParseDateOrder(cfg.Warehouse.DateOrder))
	reconcileService := reconciling.NewService(dimensionRepo)
	calendarService := calendar.NewService(dateDimRepo)
	mergeService := merging.NewService(factRepo, stagingRepo, merging.ParsePolicy(cfg.Warehouse.ReferentialPolicy))

	loadService := loading.NewService(
		pgConn,
		pgConn,
		intakeService,
		reconcileService,
		calendarService,
		mergeService,
		stagingRepo,
		loadRunRepo,
	)

	sourceReader := sourcefile.NewReader()

	loadSyncService := scheduler.NewLoadSyncService(loadService, sourceReader, cfg)
	if err := loadSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting warehouse load scheduler")
	} else {
		logrus.Info("warehouse load scheduler started")
	}

	server, err := api.New(cfg, pgConn, loadSyncService, loadRunRepo)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error checking PostgreSQL connection")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
