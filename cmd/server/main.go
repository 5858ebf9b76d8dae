// Package main implements the entry point for the pantry API server,
// which handles user accounts and their shopping list items.
package main

import (
	"log"
	"log/slog"

	"github.com/pantrydev/pantry-api/internal/config"
	"github.com/pantrydev/pantry-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, applies pending migrations and wires the application together.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(db, appLogger); err != nil {
		db.Close()
		return nil, err
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return app, nil
}
