package handler

import (
	"net/http"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/model"
	"github.com/Paul-Briman/lumina-photography/internal/service"

	"github.com/gin-gonic/gin"
)

// sharedGalleryResponse is the public shape of a gallery. The download PIN is
// deliberately absent: it is verified server-side, never shipped to viewers.
type sharedGalleryResponse struct {
	ID           uint          `json:"id"`
	Title        string        `json:"title"`
	ClientName   string        `json:"clientName"`
	ShareToken   string        `json:"shareToken"`
	CoverPhotoID *uint         `json:"coverPhotoId"`
	HasPin       bool          `json:"hasPin"`
	Photos       []model.Photo `json:"photos"`
}

func newSharedGalleryResponse(g *model.Gallery) sharedGalleryResponse {
	photos := g.Photos
	if photos == nil {
		photos = []model.Photo{}
	}
	return sharedGalleryResponse{
		ID:           g.ID,
		Title:        g.Title,
		ClientName:   g.ClientName,
		ShareToken:   g.ShareToken,
		CoverPhotoID: g.CoverPhotoID,
		HasPin:       g.DownloadPin != "",
		Photos:       photos,
	}
}

// GetSharedGallery serves the public share page; the share token is the only
// credential.
func (h *Handler) GetSharedGallery(c *gin.Context) {
	gallery, err := h.service.GetGalleryByShareToken(c.Param("token"))
	if err != nil {
		WriteServiceError(c, err, "could not load gallery")
		return
	}
	c.JSON(http.StatusOK, newSharedGalleryResponse(gallery))
}

// VerifyDownloadPin lets the public gallery page confirm a PIN before the
// viewer starts downloads. The same check is repeated on every download.
func (h *Handler) VerifyDownloadPin(c *gin.Context) {
	var req struct {
		Pin string `json:"pin" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.service.VerifyDownloadPin(c.Param("token"), req.Pin); err != nil {
		WriteServiceError(c, err, "could not verify PIN")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// DownloadSharedPhoto streams a photo to a gallery viewer after the PIN
// passes server-side. Remote binaries redirect to the image host.
func (h *Handler) DownloadSharedPhoto(c *gin.Context) {
	photoID, ok := paramID(c, "id")
	if !ok {
		return
	}

	pin := c.Query("pin")
	if pin == "" {
		pin = c.GetHeader("X-Download-Pin")
	}

	photo, err := h.service.SharedPhotoForDownload(c.Param("token"), photoID, pin)
	if err != nil {
		WriteServiceError(c, err, "could not download photo")
		return
	}

	if strings.HasPrefix(photo.StoragePath, "http://") || strings.HasPrefix(photo.StoragePath, "https://") {
		c.Redirect(http.StatusFound, photo.StoragePath)
		return
	}

	diskPath, ok := service.DiskPathFor(photo.StoragePath)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Photo not found"})
		return
	}
	c.FileAttachment(diskPath, photo.Filename)
}
