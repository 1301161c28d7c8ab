package server

import (
	"fmt"
	"net/http"

	"quickbites/app/routes"
	"quickbites/config"
	"quickbites/database/seeders"
	"quickbites/pkg/cache"
	"quickbites/pkg/database"
	"quickbites/pkg/logger"
	"quickbites/pkg/migration"
)

// Start boots configuration, store, cache and schema, then serves the
// API. An unreachable database is fatal; an unreachable cache is not.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect()
	if err != nil {
		// Storage unavailable: nothing works without the store.
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, serving without it", "error", err.Error())
	}

	if err := migration.New(db).Run(); err != nil {
		return err
	}
	if err := seeders.RunAll(db); err != nil {
		return err
	}

	RegisterListeners()

	addr := ":" + config.AppPort()
	logger.Info("listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, routes.Handler(db))
}
