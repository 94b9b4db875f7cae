// Package main is the entry point for the Property Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/property-manager/backend/config"
	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/infra/db"
	"github.com/property-manager/backend/internal/infra/dependency"
	"github.com/property-manager/backend/internal/integration/adapters"
	"github.com/property-manager/backend/internal/integration/persistence"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Property Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.PropertyModel{},
		&model.MeterReadingModel{},
		&model.TariffModel{},
		&model.ExpenseModel{},
		&model.RecurringCostModel{},
		&model.ContactModel{},
		&model.FileAttachmentModel{},
		&model.ActivityEntryModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Ensure a default admin account exists so a fresh install is usable.
	if err := seedDefaultAdmin(context.Background(), persistence.NewUserRepository(database.DB()), adapters.NewPasswordService()); err != nil {
		slog.Error("Failed to seed default admin user", "error", err)
		os.Exit(1)
	}

	// Initialize file storage
	storage, err := adapters.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		slog.Error("Failed to initialize file storage", "error", err, "dir", cfg.Uploads.Dir)
		os.Exit(1)
	}

	// Wire dependencies and set up the router
	injector := dependency.NewInjector(cfg, database.DB(), storage, database.HealthCheck)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// seedDefaultAdmin creates the initial admin/admin account when no user
// named "admin" exists yet. The password should be changed after the
// first login.
func seedDefaultAdmin(ctx context.Context, userRepo adapter.UserRepository, passwordService adapter.PasswordService) error {
	exists, err := userRepo.ExistsByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := passwordService.HashPassword("admin")
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := entity.NewUser("admin", hash, entity.RoleAdmin, nil)
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin user: %w", err)
	}

	slog.Info("Created default admin user", "username", "admin")
	return nil
}
