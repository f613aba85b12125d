package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waypoint/cmd"
	"waypoint/internal/adapters/out/postgres"
	"waypoint/internal/pkg/logger"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		logger.New(logger.Config{}).Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Config{Env: config.AppEnv, Level: config.LogLevel})
	log.Info().Str("env", config.AppEnv).Msg("starting waypoint")

	gormDB, err := gorm.Open(pgdriver.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to postgres")
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}

	app := cmd.NewCompositionRoot(config, gormDB, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.EnsureBootstrapAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed admin account")
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatal().Err(err).Msg("start jobs")
	}

	server := app.CreateHTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start(config.HTTPAddress())
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	jobManager.StopAll()
	if err = app.Close(); err != nil {
		log.Warn().Err(err).Msg("close adapters")
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("stopped")
}
