package middleware

import (
	"net/http"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth gates owner-scoped routes. A missing or malformed header is 401; a
// token that fails verification (bad signature, expired) is 403.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Malformed Authorization header"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// CurrentPhotographerID reads the authenticated identity set by JWTAuth.
func CurrentPhotographerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
