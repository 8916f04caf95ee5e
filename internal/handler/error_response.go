package handler

import (
	"github.com/Paul-Briman/lumina-photography/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// WriteServiceError is re-exported so handlers in this package stay terse.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
