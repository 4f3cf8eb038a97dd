// Package main is the entry point for the campaign tracker API server.
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

	"github.com/campaign-tracker/backend/config"
	"github.com/campaign-tracker/backend/internal/domain/entity"
	"github.com/campaign-tracker/backend/internal/infra/db"
	"github.com/campaign-tracker/backend/internal/infra/dependency"
	"github.com/campaign-tracker/backend/internal/integration/adapters"
	"github.com/campaign-tracker/backend/internal/integration/persistence"
	"github.com/campaign-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (optional in production)
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting campaign tracker API",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.SeasonModel{},
		&model.TeamModel{},
		&model.TeamMemberModel{},
		&model.ReceiptBookModel{},
		&model.FieldDataModel{},
		&model.AdminModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	if err := seedAdminAccount(cfg, database); err != nil {
		slog.Error("Failed to seed admin account", "error", err)
		os.Exit(1)
	}

	injector := dependency.NewInjector(cfg, database.DB(), database.HealthCheck)
	engine := injector.Router.Setup(cfg.Server.Environment)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// seedAdminAccount creates the first admin account when the admins table is
// empty and a seed password is configured.
func seedAdminAccount(cfg *config.Config, database *db.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminRepo := persistence.NewAdminRepository(database.DB())

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.Admin.SeedPassword == "" {
		slog.Warn("No admin accounts exist and ADMIN_SEED_PASSWORD is not set, skipping seed")
		return nil
	}

	passwordService := adapters.NewPasswordService()
	hash, err := passwordService.HashPassword(cfg.Admin.SeedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin := entity.NewAdmin(cfg.Admin.SeedUsername, hash, cfg.Admin.SeedName, entity.RoleAdmin)
	admin.ForcePasswordChange = true

	if err := adminRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	slog.Info("Seeded initial admin account", "username", admin.Username)
	return nil
}
