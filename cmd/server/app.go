package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/platform/postgres"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Everything is injected
// explicitly; there is no global engine or session factory.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	taskStore store.TaskStore

	// Auth services
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication connects to the database, applies migrations, and wires
// every dependency the HTTP layer needs.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        postgres.NewUserStore(db),
		taskStore:        postgres.NewTaskStore(db),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
