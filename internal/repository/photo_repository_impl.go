package repository

import (
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"gorm.io/gorm"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) FindByID(id uint) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) FindInGallery(galleryID, photoID uint) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.Where("id = ? AND gallery_id = ?", photoID, galleryID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotoRepository) ListByGallery(galleryID uint) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.Where("gallery_id = ?", galleryID).Order("id ASC").Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) Create(p *model.Photo) error {
	return r.db.Create(p).Error
}

func (r *PhotoRepository) Save(p *model.Photo) error {
	return r.db.Save(p).Error
}

// DeleteAndClearCover deletes the photo row and, in the same transaction,
// clears the owning gallery's cover reference when it points at this photo.
func (r *PhotoRepository) DeleteAndClearCover(p *model.Photo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Photo{}, p.ID).Error; err != nil {
			return err
		}
		return tx.Model(&model.Gallery{}).
			Where("id = ? AND cover_photo_id = ?", p.GalleryID, p.ID).
			Update("cover_photo_id", nil).Error
	})
}
