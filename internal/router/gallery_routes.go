package router

import (
	"github.com/Paul-Briman/lumina-photography/internal/handler"
	"github.com/Paul-Briman/lumina-photography/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerGalleryRoutes(api *gin.RouterGroup, h *handler.Handler) {
	uploadLimit := middleware.UploadBodyLimit()

	galleries := api.Group("/galleries")
	galleries.Use(middleware.JWTAuth())

	galleries.GET("", h.ListGalleries)
	galleries.POST("", h.CreateGallery)
	galleries.GET("/:id", h.GetGallery)
	galleries.PATCH("/:id", h.UpdateGallery)
	galleries.PATCH("/:id/cover", h.SetCoverPhoto)
	galleries.DELETE("/:id", h.DeleteGallery)
	galleries.POST("/:id/photos", uploadLimit, h.UploadPhotos)
	galleries.POST("/:id/photos-metadata", h.CreatePhotoMetadata)

	photos := api.Group("/photos")
	photos.Use(middleware.JWTAuth())

	photos.PATCH("/:id", uploadLimit, h.ReplacePhoto)
	photos.DELETE("/:id", h.DeletePhoto)
}
