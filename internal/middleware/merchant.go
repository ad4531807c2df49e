package middleware

import (
	"context"  // Context for store lookups
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"tuarica/internal/catalog" // Store error sentinels
	"tuarica/internal/domain"  // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// UserFinder looks users up by id
type UserFinder interface {
	UserByID(ctx context.Context, id uint) (*domain.User, error)
}

// MerchantOnlyMiddleware checks the user's role from the store on each request
func MerchantOnlyMiddleware(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := UserID(c) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.UserByID(c.Request.Context(), userID) // Fetch user from store
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			// Token for a user that no longer exists
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Merchant access required"})
			return
		case err != nil:
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err}).Error("Failed to load user")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Service unavailable"})
			return
		}
		// Check if user role is merchant
		if user.Role != domain.RoleMerchant {
			// If not merchant, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Merchant access required"})
			return
		}
		c.Set(RoleKey, user.Role) // Refresh role from the store
		// If merchant, proceed to the next handler
		c.Next()
	}
}
