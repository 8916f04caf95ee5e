package router

import (
	"github.com/Paul-Briman/lumina-photography/internal/handler"
	"github.com/Paul-Briman/lumina-photography/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := r.Group("/api")
	api.Use(middleware.BodyLimit())

	// one limiter instance shared by every credential endpoint
	authLimiter := middleware.AuthRateLimit()

	registerAuthRoutes(api, authLimiter, rt.handler)
	registerGalleryRoutes(api, rt.handler)
	registerInvoiceRoutes(api, rt.handler)
	registerPublicRoutes(api, rt.handler)
}
