// main.go
package main

import (
	"log"

	"cinema-screening/cmd"
	"cinema-screening/internal/data/repository"
	"cinema-screening/internal/wire"
	"cinema-screening/pkg/utils"

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
		zap.Bool("debug", config.App.Debug),
	)

	// In-memory screening store, lives as long as the process
	repos := repository.NewRepository(logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config, logger); err != nil {
		logger.Fatal("Server exited", zap.Error(err))
	}
}
