package handler

import (
	"fmt"
	"net/http"

	"github.com/Paul-Briman/lumina-photography/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListInvoices(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	invoices, err := h.service.ListInvoices(ownerID)
	if err != nil {
		WriteServiceError(c, err, "could not list invoices")
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *Handler) CreateInvoice(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req struct {
		GalleryID     uint   `json:"galleryId" binding:"required"`
		InvoiceNumber string `json:"invoiceNumber" binding:"required"`
		Amount        *int64 `json:"amount" binding:"required"`
		Status        string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	invoice, err := h.service.CreateInvoice(ownerID, req.GalleryID, req.InvoiceNumber, *req.Amount, req.Status)
	if err != nil {
		WriteServiceError(c, err, "could not create invoice")
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	invoiceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	invoice, err := h.service.UpdateInvoiceStatus(ownerID, invoiceID, req.Status)
	if err != nil {
		WriteServiceError(c, err, "could not update invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *Handler) GetInvoicePdf(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	invoiceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	data, filename, err := h.service.RenderInvoicePdf(ownerID, invoiceID)
	if err != nil {
		WriteServiceError(c, err, "could not render invoice")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
