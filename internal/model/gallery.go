package model

import "time"

type Gallery struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	PhotographerID uint         `json:"photographerId" gorm:"not null;index"`
	Photographer   Photographer `json:"-" gorm:"foreignKey:PhotographerID;references:ID;constraint:OnDelete:CASCADE;"`
	Title          string       `json:"title" gorm:"not null"`
	ClientName     string       `json:"clientName" gorm:"not null"`
	// ShareToken is immutable after creation and globally unique; it is the only
	// credential required to view the gallery through the public share endpoint.
	ShareToken   string    `json:"shareToken" gorm:"uniqueIndex;not null"`
	DownloadPin  string    `json:"downloadPin,omitempty"`
	CoverPhotoID *uint     `json:"coverPhotoId"`
	CreatedAt    time.Time `json:"createdAt"`
	Photos       []Photo   `json:"photos,omitempty"`
}
