package middleware

import "github.com/gin-gonic/gin"

// NoCache instructs clients and intermediaries not to cache the response.
// Resource listings change frequently and a stale cached copy would mislead operators.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}
