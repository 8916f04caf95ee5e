package repository

import "github.com/Paul-Briman/lumina-photography/internal/model"

type PhotoStore interface {
	FindByID(id uint) (*model.Photo, error)
	FindInGallery(galleryID, photoID uint) (*model.Photo, error)
	ListByGallery(galleryID uint) ([]model.Photo, error)
	Create(p *model.Photo) error
	Save(p *model.Photo) error
	DeleteAndClearCover(p *model.Photo) error
}
