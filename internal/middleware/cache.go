package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore forbids any caching of the response. Every authenticated surface
// serves per-user data, so nothing past the login page may land in a shared
// or back-button cache.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
