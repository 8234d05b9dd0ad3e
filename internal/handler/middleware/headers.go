package middleware

import "github.com/gin-gonic/gin"

// NoStore keeps browsers and proxies from caching responses that carry session or export data.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
	}
}
