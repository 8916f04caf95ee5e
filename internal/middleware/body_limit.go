package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimit caps the request body for the JSON API. Multipart photo routes
// are skipped here and capped by UploadBodyLimit instead.
func BodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/photos") || strings.HasPrefix(path, "/api/photos/") {
			c.Next()
			return
		}

		maxSizeMB := config.Get().Upload.MaxBodyMB
		if maxSizeMB <= 0 {
			maxSizeMB = 2
		}

		maxBytes := int64(maxSizeMB) * 1024 * 1024
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimit caps the multipart upload routes at the larger upload
// budget.
func UploadBodyLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxUploadMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": fmt.Sprintf("upload must not exceed %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
