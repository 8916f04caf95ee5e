package middleware

import "github.com/gin-gonic/gin"

// StaticCache marks served upload files as immutable: stored names are
// uuids, so a path never serves different content.
func StaticCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=31536000, immutable")
		c.Next()
	}
}
