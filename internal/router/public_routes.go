package router

import (
	"github.com/Paul-Briman/lumina-photography/internal/handler"

	"github.com/gin-gonic/gin"
)

// registerPublicRoutes wires the client-facing share surface; the share token
// in the URL is the only credential, with the download PIN re-checked
// server-side on every download.
func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	share := api.Group("/share")
	share.GET("/:token", h.GetSharedGallery)
	share.POST("/:token/verify-pin", h.VerifyDownloadPin)
	share.GET("/:token/photos/:id/download", h.DownloadSharedPhoto)
}
