// main.go
package main

import (
	"log"

	"github.com/Ravinder82/CineRating/cmd"
	"github.com/Ravinder82/CineRating/internal/data/repository"
	"github.com/Ravinder82/CineRating/internal/wire"
	"github.com/Ravinder82/CineRating/pkg/cache"
	"github.com/Ravinder82/CineRating/pkg/database"
	"github.com/Ravinder82/CineRating/pkg/utils"

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

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Bootstrap the content_items table
	if err := database.EnsureSchema(db); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	// Optional redis cache. Empty REDIS_ADDR disables caching.
	statsCache, err := cache.New(config.Redis, logger)
	if err != nil {
		logger.Warn("Redis unavailable, running without cache", zap.Error(err))
		statsCache = nil
	}
	if statsCache != nil {
		defer statsCache.Close()
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, statsCache, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port, logger)
}
