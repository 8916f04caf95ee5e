package handler

import (
	"net/http"

	"github.com/Paul-Briman/lumina-photography/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ReplacePhoto re-uploads the binary behind an existing photo row; the id is
// unchanged so cover references survive.
func (h *Handler) ReplacePhoto(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	photoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	photo, err := h.service.ReplacePhoto(ownerID, photoID, file)
	if err != nil {
		WriteServiceError(c, err, "could not replace photo")
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	photoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(ownerID, photoID); err != nil {
		WriteServiceError(c, err, "could not delete photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo deleted"})
}
