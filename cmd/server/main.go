package main

import (
	"context" // context package is needed for Redis operations

	"tuarica/internal/api"     // Custom package for API handlers
	"tuarica/internal/catalog" // Catalog read path
	"tuarica/internal/config"  // Custom package for configuration
	"tuarica/internal/db"      // Database connection
	"tuarica/internal/logging" // Logger setup
	"tuarica/internal/utils"   // Redis client

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the Read API
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	// Setup logger
	logging.Setup(cfg.LogLevel, cfg.IsProd)

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.SetPool(gdb, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns, cfg.DBConnLifetime); err != nil {
		logrus.Fatalf("failed to configure DB pool: %v", err)
	}
	defer db.Close(gdb)

	// Setup Redis client, optional
	redisClient, err := utils.NewRedisClient(context.Background(), cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}
	if redisClient == nil {
		logrus.Info("REDIS_ADDR not set, response cache disabled")
	} else {
		defer redisClient.Close()
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := catalog.NewService(catalog.NewGormStore(gdb)) // Catalog service over the gorm store
	r := api.NewRouter(api.RouterConfig{
		Service:      svc,
		Redis:        redisClient,
		CacheTTL:     cfg.CacheTTL,
		JWTSecret:    cfg.JWTSecret,
		RateLimitRPS: cfg.RateLimitRPS,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithField("port", cfg.AppPort).Info("Read API running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
