package api

import (
	"net/http" // HTTP status codes

	"tuarica/internal/catalog"    // Catalog service
	"tuarica/internal/middleware" // Authenticated user

	"github.com/gin-gonic/gin" // Gin web framework
)

// OwnedCommercesHandler returns the commerces owned by the authenticated merchant
func OwnedCommercesHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c) // Set by JWTAuthMiddleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		commerces, err := svc.OwnedCommerces(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Not found")
			return
		}
		c.JSON(http.StatusOK, commerces)
	}
}
