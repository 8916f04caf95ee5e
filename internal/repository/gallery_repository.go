package repository

import "github.com/Paul-Briman/lumina-photography/internal/model"

type GalleryStore interface {
	FindByID(id uint) (*model.Gallery, error)
	FindByIDWithPhotos(id uint) (*model.Gallery, error)
	FindByShareToken(token string) (*model.Gallery, error)
	FindByShareTokenWithPhotos(token string) (*model.Gallery, error)
	ListByPhotographer(photographerID uint) ([]model.Gallery, error)
	Create(g *model.Gallery) error
	UpdateFields(id uint, updates map[string]interface{}) error
	SetCoverPhoto(id uint, photoID *uint) error
	DeleteCascade(id uint) error
}
