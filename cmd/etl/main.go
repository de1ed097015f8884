// ETL entrypoint: loads the flat-file catalog into the Postgres warehouse.
package main

import (
	"context"
	"log"

	"movieflix/internal/data/repository"
	"movieflix/internal/etl"
	"movieflix/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting ETL",
		zap.String("data_dir", config.App.DataDir),
		zap.String("warehouse", config.Warehouse.Host),
	)

	repos, err := repository.NewRepository(config.App.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open table stores", zap.Error(err))
	}

	db, err := etl.WaitForWarehouse(config.Warehouse, logger)
	if err != nil {
		logger.Fatal("Warehouse unavailable", zap.Error(err))
	}
	defer db.Close()

	runner := etl.NewRunner(db, repos, logger)
	if err := runner.Run(context.Background()); err != nil {
		logger.Fatal("ETL failed", zap.Error(err))
	}

	logger.Info("ETL completed")
}
