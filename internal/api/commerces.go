package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"tuarica/internal/catalog" // Catalog service
	"tuarica/internal/domain"  // Importing domain models
	"tuarica/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
)

// ListCommercesHandler returns one page of commerces
func ListCommercesHandler(svc *catalog.Service, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := 1                           // Default page number
		pageSize := catalog.DefaultPageSize // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			// If valid, set page size
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= catalog.MaxPageSize {
				pageSize = v // Set page size
			}
		}
		// Create a cache key based on the effective pagination parameters
		cacheKey := CachePrefix + "comercios:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		var cached catalog.Page
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err != nil {
			logrus.WithFields(logrus.Fields{"key": cacheKey, "error": err}).Warn("Cache read failed")
		}
		// If cached data found, return it
		if found {
			c.Header(CacheHeader, "hit")
			c.JSON(http.StatusOK, cached)
			return
		}

		result, err := svc.ListCommerces(ctx, page, pageSize)
		if err != nil {
			respondError(c, err, "Not found")
			return
		}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, result, ttl)
		c.Header(CacheHeader, "miss")
		c.JSON(http.StatusOK, result)
	}
}

// commerceDetail always serializes productos, even when empty
type commerceDetail struct {
	*domain.Commerce
	Products []domain.Product `json:"productos"`
}

// GetCommerceHandler returns a commerce with its subcategory, category and products
func GetCommerceHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		commerce, err := svc.GetCommerce(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Commerce not found")
			return
		}
		c.JSON(http.StatusOK, commerceDetail{Commerce: commerce, Products: commerce.Products})
	}
}

// CommerceProductsHandler returns the products of a commerce
func CommerceProductsHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.CommerceProducts(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondError(c, err, "Commerce not found")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
