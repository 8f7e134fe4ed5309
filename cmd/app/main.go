package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/platewise/mealplan-engine/internal/catalog"
	"github.com/platewise/mealplan-engine/internal/config"
	"github.com/platewise/mealplan-engine/internal/database"
	"github.com/platewise/mealplan-engine/internal/database/postgres"
	"github.com/platewise/mealplan-engine/internal/handler"
	"github.com/platewise/mealplan-engine/internal/logger"
	"github.com/platewise/mealplan-engine/internal/planner"
	"github.com/platewise/mealplan-engine/internal/server"
	"github.com/platewise/mealplan-engine/internal/swap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev",
	))

	slog.Info("Starting meal plan engine",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"port", cfg.Port)

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	connString := cfg.GetDBConnString()

	if err := database.Migrate(connString); err != nil {
		return err
	}

	dbPool, err := database.NewPool(connString,
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	catalogService := catalog.NewService(postgres.NewCatalogRepository(dbPool))
	planRepo := postgres.NewPlanRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	plannerService := planner.NewService(catalogService, planRepo, profileRepo)
	swapService := swap.NewService(catalogService, planRepo)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, dbPool,
		catalogService, plannerService, swapService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
		return err
	}

	slog.Info("Server stopped")
	return nil
}
