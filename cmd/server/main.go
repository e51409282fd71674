package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/store"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	cfg := config.Load()

	documents, db, err := buildStore(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize document store", "error", err, "backend", cfg.Database.Backend)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(documents, metrics, logger)
	goalService := services.NewGoalService(documents, metrics, logger)
	expenseService := services.NewExpenseService(documents, metrics, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	router := handlers.NewRouter(
		handlers.NewAccountHandler(accountService),
		handlers.NewTransactionHandler(accountService),
		handlers.NewGoalHandler(goalService),
		handlers.NewExpenseHandler(expenseService),
		gormDBOrNil(db),
	)
	router.Register(e)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		address := ":" + cfg.Server.Port
		logger.Info("starting server", "address", address, "backend", cfg.Database.Backend)
		if err := e.Start(address); err != nil {
			logger.Info("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// buildStore selects the document store backend. The memory backend needs
// no database; postgres additionally runs migrations before serving.
func buildStore(cfg *config.Config, logger *slog.Logger) (store.DocumentStore, *database.DB, error) {
	switch cfg.Database.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory document store")
		return store.NewMemoryStore(), nil, nil

	case config.BackendPostgres:
		migrationDB, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		runner := database.NewMigrationRunner(migrationDB)
		if err := runner.WaitForDatabase(); err != nil {
			return nil, nil, err
		}
		if err := runner.RunMigrations(); err != nil {
			return nil, nil, err
		}
		if err := runner.LoadSeeds(); err != nil {
			return nil, nil, err
		}
		if err := migrationDB.Close(); err != nil {
			return nil, nil, err
		}

		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return store.NewGormStore(db.DB), db, nil

	default:
		db, err := database.New(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(); err != nil {
			return nil, nil, err
		}
		return store.NewGormStore(db.DB), db, nil
	}
}

// gormDBOrNil unwraps the gorm handle for handlers that probe database health.
func gormDBOrNil(db *database.DB) *gorm.DB {
	if db == nil {
		return nil
	}
	return db.DB
}
