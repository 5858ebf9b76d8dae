package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pantrydev/pantry-api/internal/api"
	"github.com/pantrydev/pantry-api/internal/config"
	"github.com/pantrydev/pantry-api/internal/platform/postgres"
	"github.com/pantrydev/pantry-api/internal/service"
	"github.com/pantrydev/pantry-api/internal/service/auth"
	"github.com/pantrydev/pantry-api/internal/store"
)

// application holds the wired-together components of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	itemStore store.ItemStore

	userService service.UserService
	authService service.AuthService
	itemService service.ItemService

	userHandler *api.UserHandler
	authHandler *api.AuthHandler
	itemHandler *api.ItemHandler
}

// newApplication constructs the stores, services and handlers from the
// given configuration and database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db)
	itemStore := postgres.NewPostgresItemStore(db)

	hasher := auth.NewBcryptHasher()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userService := service.NewUserService(userStore, hasher, logger)
	authService := service.NewAuthService(userStore, hasher, jwtService, logger)
	itemService := service.NewItemService(itemStore, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userStore:   userStore,
		itemStore:   itemStore,
		userService: userService,
		authService: authService,
		itemService: itemService,
		userHandler: api.NewUserHandler(userService, logger),
		authHandler: api.NewAuthHandler(authService, logger),
		itemHandler: api.NewItemHandler(itemService, logger),
	}, nil
}

// Close releases resources held by the application.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
