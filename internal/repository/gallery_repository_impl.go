package repository

import (
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) FindByID(id uint) (*model.Gallery, error) {
	var g model.Gallery
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) FindByIDWithPhotos(id uint) (*model.Gallery, error) {
	var g model.Gallery
	if err := r.db.Preload("Photos").First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) FindByShareToken(token string) (*model.Gallery, error) {
	var g model.Gallery
	if err := r.db.Where("share_token = ?", token).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) FindByShareTokenWithPhotos(token string) (*model.Gallery, error) {
	var g model.Gallery
	if err := r.db.Preload("Photos").Where("share_token = ?", token).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GalleryRepository) ListByPhotographer(photographerID uint) ([]model.Gallery, error) {
	var galleries []model.Gallery
	err := r.db.Preload("Photos").
		Where("photographer_id = ?", photographerID).
		Order("created_at DESC").
		Find(&galleries).Error
	if err != nil {
		return nil, err
	}
	return galleries, nil
}

func (r *GalleryRepository) Create(g *model.Gallery) error {
	return r.db.Create(g).Error
}

func (r *GalleryRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&model.Gallery{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GalleryRepository) SetCoverPhoto(id uint, photoID *uint) error {
	return r.db.Model(&model.Gallery{}).Where("id = ?", id).Update("cover_photo_id", photoID).Error
}

// DeleteCascade removes the gallery together with its photos and invoices in a
// single transaction, so a crash cannot leave orphan rows behind.
func (r *GalleryRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&model.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gallery_id = ?", id).Delete(&model.Invoice{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Gallery{}, id).Error
	})
}
