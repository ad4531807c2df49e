package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"tuarica/internal/catalog"    // Store error sentinels
	"tuarica/internal/middleware" // Request id

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// respondError maps a catalog error onto 404 or 503
func respondError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound}) // Absent row
		return
	}
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.RequestID(c),
		"path":       c.Request.URL.Path,
		"error":      err,
	}).Error("Store unavailable")
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
}
