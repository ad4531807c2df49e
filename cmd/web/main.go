package main

import (
	"io" // Optional source cleanup

	"tuarica/internal/config"     // Custom package for configuration
	"tuarica/internal/logging"    // Logger setup
	"tuarica/internal/web"        // Page routes
	"tuarica/internal/web/loader" // Page data loaders

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the web frontend
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	logging.Setup(cfg.LogLevel, cfg.IsProd)

	source, err := loader.NewSource(cfg) // live or fixture
	if err != nil {
		logrus.Fatalf("failed to create data source: %v", err)
	}
	if closer, ok := source.(io.Closer); ok {
		defer closer.Close()
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := web.NewRouter(loader.New(source))
	if err != nil {
		logrus.Fatalf("failed to load templates: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":   cfg.WebPort,
		"source": cfg.WebDataSource,
		"api":    cfg.APIURL,
	}).Info("Web frontend running")
	if err := r.Run(":" + cfg.WebPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
