// Package api boots the kitchenpos HTTP process: observability, storage,
// services, and the gin router.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	kitchenposserver "kitchenpos/server"

	menumemory "kitchenpos/internal/domains/menus/adapters/memory"
	menuobs "kitchenpos/internal/domains/menus/adapters/observability"
	menupostgres "kitchenpos/internal/domains/menus/adapters/persistence/postgres"
	menuapp "kitchenpos/internal/domains/menus/application"
	menuports "kitchenpos/internal/domains/menus/ports"

	tablememory "kitchenpos/internal/domains/tables/adapters/memory"
	tableobs "kitchenpos/internal/domains/tables/adapters/observability"
	tablepostgres "kitchenpos/internal/domains/tables/adapters/persistence/postgres"
	tableapp "kitchenpos/internal/domains/tables/application"
	tableports "kitchenpos/internal/domains/tables/ports"

	"kitchenpos/internal/platform/migrations"
	platformobservability "kitchenpos/internal/platform/observability"
	platformpostgres "kitchenpos/internal/platform/postgres"
)

// Run boots the kitchenpos HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	const serviceName = "kitchenpos-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg := LoadConfig()
	db, cleanupDB := platformpostgres.ConnectOrFallback(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil && cfg.MigrateOnStart {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	menuService := menuobs.New(
		buildMenuService(db),
		menuobs.WithLogger(logger),
		menuobs.WithTracer(instruments.Tracer("internal.menus.application")),
		menuobs.WithMeter(instruments.Meter("internal.menus.application")),
	)
	tableService := tableobs.New(
		buildTableService(db),
		tableobs.WithLogger(logger),
		tableobs.WithTracer(instruments.Tracer("internal.tables.application")),
		tableobs.WithMeter(instruments.Meter("internal.tables.application")),
	)

	handlers := kitchenposserver.ApiHandleFunctions{
		MenuAPI:  kitchenposserver.NewMenuAPI(menuService),
		TableAPI: kitchenposserver.NewTableAPI(tableService),
	}

	router := kitchenposserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))
	addr := ":" + cfg.Port
	logger.Info("kitchenpos API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("kitchenpos API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildMenuService assembles the menus core over postgres when a connection
// is available and over the in-memory adapters otherwise.
func buildMenuService(db *gorm.DB) menuports.Service {
	if db == nil {
		return menuapp.NewService(
			menumemory.NewMenuRepository(),
			menumemory.NewMenuProductRepository(),
			menumemory.NewProductRepository(),
			menumemory.NewMenuGroupRepository(),
			menumemory.Transactor{},
		)
	}
	return menuapp.NewService(
		menupostgres.NewMenuRepository(db),
		menupostgres.NewMenuProductRepository(db),
		menupostgres.NewProductRepository(db),
		menupostgres.NewMenuGroupRepository(db),
		platformpostgres.NewTxManager(db),
	)
}

// buildTableService assembles the tables core over the selected storage.
func buildTableService(db *gorm.DB) tableports.Service {
	if db == nil {
		return tableapp.NewService(
			tablememory.NewOrderTableRepository(),
			tablememory.NewOrderRepository(),
			tablememory.Transactor{},
		)
	}
	return tableapp.NewService(
		tablepostgres.NewOrderTableRepository(db),
		tablepostgres.NewOrderRepository(db),
		platformpostgres.NewTxManager(db),
	)
}
