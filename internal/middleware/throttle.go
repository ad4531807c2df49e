package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/ratelimit"    // Leaky-bucket limiter
)

// ThrottleMiddleware paces requests to at most rps per second.
// Requests wait for their slot instead of being rejected; rps <= 0 disables it.
func ThrottleMiddleware(rps int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() } // Throttling disabled
	}
	rl := ratelimit.New(rps, ratelimit.WithoutSlack) // Shared by every request, no bursts
	return func(c *gin.Context) {
		rl.Take() // Block until a slot is free
		c.Next()
	}
}
