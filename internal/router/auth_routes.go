package router

import (
	"github.com/Paul-Briman/lumina-photography/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	auth := api.Group("/auth")
	auth.POST("/register", authLimiter, h.Register)
	auth.POST("/login", authLimiter, h.Login)
	auth.POST("/forgot-password", authLimiter, h.ForgotPassword)
	auth.POST("/reset-password", authLimiter, h.ResetPassword)
}
