package api

import (
	"net/http" // HTTP status codes
	"time"     // Time durations

	"tuarica/internal/catalog"    // Catalog service
	"tuarica/internal/domain"     // Importing domain models
	"tuarica/internal/middleware" // Request id
	"tuarica/internal/utils"      // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
)

// Response headers describing where a listing came from
const (
	DataSourceHeader = "X-Data-Source" // "store" or "fallback"
	CacheHeader      = "X-Cache"       // "hit" or "miss"
)

// CachePrefix namespaces every key the API writes to Redis
const CachePrefix = "tuarica:"

const categoriesCacheKey = CachePrefix + "categorias"

// ListCategoriesHandler returns every category, or the fallback list when the store fails
func ListCategoriesHandler(svc *catalog.Service, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Category // Cached store listing
		found, err := utils.GetCache(ctx, rdb, categoriesCacheKey, &cached)
		if err != nil {
			logrus.WithFields(logrus.Fields{"key": categoriesCacheKey, "error": err}).Warn("Cache read failed")
		}
		// If cached data found, return it
		if found {
			c.Header(DataSourceHeader, string(catalog.SourceStore))
			c.Header(CacheHeader, "hit")
			c.JSON(http.StatusOK, cached)
			return
		}

		listing := svc.ListCategories(ctx) // Never fails
		if listing.Degraded() {
			// Degraded answers are never cached so recovery is visible at once
			logrus.WithFields(logrus.Fields{
				"request_id": middleware.RequestID(c),
				"error":      listing.Cause,
			}).Warn("Serving fallback categories")
		} else {
			_ = utils.SetCache(ctx, rdb, categoriesCacheKey, listing.Categories, ttl)
		}
		c.Header(DataSourceHeader, string(listing.Source))
		c.Header(CacheHeader, "miss")
		c.JSON(http.StatusOK, listing.Categories)
	}
}

// GetCategoryHandler returns one category with its subcategories
func GetCategoryHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := svc.GetCategory(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Category not found")
			return
		}
		if category.Subcategories == nil {
			category.Subcategories = []domain.Subcategory{}
		}
		c.JSON(http.StatusOK, categoryDetail{Category: category, Subcategories: category.Subcategories})
	}
}

// categoryDetail always serializes subcategorias, even when empty
type categoryDetail struct {
	*domain.Category
	Subcategories []domain.Subcategory `json:"subcategorias"`
}

// CategoryCommercesHandler returns the commerces listed under a category
func CategoryCommercesHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		commerces, err := svc.CategoryCommerces(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Category not found")
			return
		}
		c.JSON(http.StatusOK, commerces)
	}
}
