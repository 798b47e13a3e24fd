package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modziE3/SENG302-TradieMe-sub002/internal/config"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/controller"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/notify"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/repo"
	"github.com/modziE3/SENG302-TradieMe-sub002/internal/service"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/http_server"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/logging"
	"github.com/modziE3/SENG302-TradieMe-sub002/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, sourceUrl string, logger *logging.Logger) error {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, "postgres", driver)
	if err != nil {
		return err
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info("no change made by migration scripts")

			return nil
		}

		return err
	}

	return nil
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	logger.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		logger.Error("error occurred while connecting to db", "err", err)
		os.Exit(1)
	}
	defer postgresDB.Close()

	logger.Info("running migrations")
	if err := runMigrations(postgresDB, cfg.MigrationsDir, logger); err != nil {
		logger.Error("migrations failed", "err", err)
		os.Exit(1)
	}

	notifier := notify.NewAsyncScheduler(notify.NewLogSender(logger), cfg.NotifyQueueSize, logger)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, notifier)
	handler := echo.New()

	logger.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services)

	logger.Info("starting server", "address", cfg.ServerAddress)
	httpServer := http_server.New(handler, cfg.ServerAddress)

	logger.Info("ready to process requests")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("got signal", "signal", s.String())
	case err = <-httpServer.Notify():
		logger.Error("server stopped", "err", err)
	}

	logger.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		logger.Error("shutdown error", "err", err)
	}

	// let queued notifications drain before the process exits
	notifier.Close()

	logger.Info("successful shutdown")
}
