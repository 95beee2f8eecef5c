package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/repository/kv"
	postgresStore "github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisStore "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/kvstore"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	"github.com/iho/fintrack/internal/infrastructure/postgres"
	"github.com/iho/fintrack/internal/infrastructure/receipt"
	"github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open store")
	}
	defer cleanup()
	log.Info().Str("backend", cfg.StorageBackend).Msg("store ready")

	// Repositories
	idGen := kv.NewULIDGenerator()
	accountRepo := kv.NewAccountRepository(store, idGen)
	expenseRepo := kv.NewExpenseRepository(store, idGen)
	depositRepo := kv.NewDepositRepository(store, idGen)
	adjustmentRepo := kv.NewAdjustmentRepository(store, idGen)
	settingsRepo := kv.NewSettingsRepository(store)

	// Use cases
	appMetrics := metrics.New()
	encoder := receipt.NewEncoder()
	accountUC := usecase.NewAccountUseCase(accountRepo, expenseRepo, depositRepo, adjustmentRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, accountRepo, encoder, log.Logger)
	depositUC := usecase.NewDepositUseCase(depositRepo, accountRepo, log.Logger)
	adjustmentUC := usecase.NewAdjustmentUseCase(adjustmentRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	ledgerUC := usecase.NewReconciliationUseCase(accountRepo, expenseRepo, depositRepo, adjustmentRepo, appMetrics)

	// Router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:    handler.NewAccountHandler(accountUC),
		ExpenseHandler:    handler.NewExpenseHandler(expenseUC),
		DepositHandler:    handler.NewDepositHandler(depositUC),
		AdjustmentHandler: handler.NewAdjustmentHandler(adjustmentUC),
		SettingsHandler:   handler.NewSettingsHandler(settingsUC),
		LedgerHandler:     handler.NewLedgerHandler(ledgerUC),
		HealthHandler:     handler.NewHealthHandler(store),
		Logger:            log.Logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// openStore builds the key-value store for the configured backend. The
// returned cleanup closes any underlying connections.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		store, err := kvstore.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisStore.NewStore(client, cfg.RedisKeyPrefix), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			return nil, nil, err
		}
		return postgresStore.NewStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
