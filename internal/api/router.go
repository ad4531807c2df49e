package api

import (
	"net/http" // HTTP status codes
	"time"     // Time durations

	"tuarica/internal/catalog"    // Catalog service
	"tuarica/internal/middleware" // Custom middleware

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// RouterConfig carries the dependencies of the Read API
type RouterConfig struct {
	Service      *catalog.Service // Catalog read path
	Redis        *redis.Client    // Optional read cache
	CacheTTL     time.Duration    // Cache entry lifetime
	JWTSecret    string           // Merchant token secret
	RateLimitRPS int              // 0 disables throttling
}

// NewRouter wires every Read API route
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.ThrottleMiddleware(cfg.RateLimitRPS),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Catalog routes
	r.GET("/categorias", ListCategoriesHandler(cfg.Service, cfg.Redis, cfg.CacheTTL))
	r.GET("/categorias/:slug", GetCategoryHandler(cfg.Service))
	r.GET("/categorias/:slug/comercios", CategoryCommercesHandler(cfg.Service))
	r.GET("/comercios", ListCommercesHandler(cfg.Service, cfg.Redis, cfg.CacheTTL))
	r.GET("/comercios/:slug", GetCommerceHandler(cfg.Service))
	r.GET("/comercios/:slug/productos", CommerceProductsHandler(cfg.Service))

	// Auth routes
	r.POST("/auth/login", LoginHandler(cfg.Service, cfg.JWTSecret))

	// Merchant routes (protected, merchants only)
	meGroup := r.Group("/me")
	meGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.MerchantOnlyMiddleware(cfg.Service))
	meGroup.GET("/comercios", OwnedCommercesHandler(cfg.Service))

	return r
}
