package router

import (
	"github.com/Paul-Briman/lumina-photography/internal/handler"
	"github.com/Paul-Briman/lumina-photography/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerInvoiceRoutes(api *gin.RouterGroup, h *handler.Handler) {
	invoices := api.Group("/invoices")
	invoices.Use(middleware.JWTAuth())

	invoices.GET("", h.ListInvoices)
	invoices.POST("", h.CreateInvoice)
	invoices.PATCH("/:id", h.UpdateInvoiceStatus)
	invoices.GET("/:id/pdf", h.GetInvoicePdf)
}
