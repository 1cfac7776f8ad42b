package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"banglprop/server/config"
	"banglprop/server/internal/api"
	"banglprop/server/internal/database"
	"banglprop/server/internal/snapshot"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Optional .env for local runs
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	var store api.Querier
	if _, err := os.Stat(cfg.DBPath); err == nil {
		logger.Infof("Using database at: %s", cfg.DBPath)
		db := database.NewDatabase(cfg.DBPath, logger)
		defer db.Close()
		store = db
	} else {
		// No database file; serve from the JSON snapshots instead.
		logger.WithField("path", cfg.DBPath).Warn("Database file missing, serving from snapshots")
		store = snapshot.Load(cfg.SnapshotDir, logger)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	api.SetupRoutes(router, store, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
