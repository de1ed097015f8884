// main.go
package main

import (
	"log"

	"movieflix/cmd"
	"movieflix/internal/data/repository"
	"movieflix/internal/wire"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("data_dir", config.App.DataDir),
		zap.Bool("debug", config.App.Debug),
	)

	// Open the flat-file tables. A missing data dir is a startup
	// precondition failure, not something to limp past.
	repos, err := repository.NewRepository(config.App.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open table stores", zap.Error(err))
	}

	logger.Info("Table stores ready")

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
