package model

import "time"

type Photo struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	GalleryID uint    `json:"galleryId" gorm:"not null;index"`
	Gallery   Gallery `json:"-" gorm:"foreignKey:GalleryID;references:ID;constraint:OnDelete:CASCADE;"`
	Filename  string  `json:"filename" gorm:"not null"`
	// StoragePath is either a URL path under the local upload prefix or a full
	// http(s) URL when the binary lives on an external image host.
	StoragePath   string    `json:"storagePath" gorm:"not null"`
	ThumbnailPath string    `json:"thumbnailPath,omitempty"`
	Size          int64     `json:"size" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
}
