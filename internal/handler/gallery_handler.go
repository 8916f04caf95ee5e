package handler

import (
	"net/http"
	"strconv"

	"github.com/Paul-Briman/lumina-photography/internal/middleware"
	"github.com/Paul-Briman/lumina-photography/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListGalleries(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	galleries, err := h.service.ListGalleries(ownerID)
	if err != nil {
		WriteServiceError(c, err, "could not list galleries")
		return
	}
	c.JSON(http.StatusOK, galleries)
}

func (h *Handler) CreateGallery(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req struct {
		Title      string `json:"title" binding:"required"`
		ClientName string `json:"clientName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	gallery, err := h.service.CreateGallery(ownerID, req.Title, req.ClientName)
	if err != nil {
		WriteServiceError(c, err, "could not create gallery")
		return
	}
	c.JSON(http.StatusCreated, gallery)
}

func (h *Handler) GetGallery(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	gallery, err := h.service.GetGallery(ownerID, galleryID)
	if err != nil {
		WriteServiceError(c, err, "could not load gallery")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *Handler) UpdateGallery(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Title       *string `json:"title"`
		ClientName  *string `json:"clientName"`
		DownloadPin *string `json:"downloadPin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	gallery, err := h.service.UpdateGallery(ownerID, galleryID, service.GalleryUpdate{
		Title:       req.Title,
		ClientName:  req.ClientName,
		DownloadPin: req.DownloadPin,
	})
	if err != nil {
		WriteServiceError(c, err, "could not update gallery")
		return
	}
	c.JSON(http.StatusOK, gallery)
}

func (h *Handler) SetCoverPhoto(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		PhotoID uint `json:"photoId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	gallery, err := h.service.SetCoverPhoto(ownerID, galleryID, req.PhotoID)
	if err != nil {
		WriteServiceError(c, err, "could not set cover photo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"coverPhotoId": gallery.CoverPhotoID})
}

func (h *Handler) DeleteGallery(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteGallery(ownerID, galleryID); err != nil {
		WriteServiceError(c, err, "could not delete gallery")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPhotos(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid multipart form"})
		return
	}
	files := form.File["photos"]

	photos, err := h.service.UploadPhotos(ownerID, galleryID, files)
	if err != nil {
		WriteServiceError(c, err, "could not upload photos")
		return
	}
	c.JSON(http.StatusCreated, photos)
}

// CreatePhotoMetadata records a photo after a direct-to-CDN upload.
func (h *Handler) CreatePhotoMetadata(c *gin.Context) {
	ownerID, ok := middleware.CurrentPhotographerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}
	galleryID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Filename    string `json:"filename" binding:"required"`
		StoragePath string `json:"storagePath" binding:"required"`
		Size        int64  `json:"size" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	photo, err := h.service.AddPhotoMetadata(ownerID, galleryID, req.Filename, req.StoragePath, req.Size)
	if err != nil {
		WriteServiceError(c, err, "could not record photo")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// paramID parses a numeric path parameter; on failure it writes the 400
// itself and reports false.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
