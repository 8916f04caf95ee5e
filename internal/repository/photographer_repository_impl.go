package repository

import (
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/model"

	"gorm.io/gorm"
)

type PhotographerRepository struct {
	db *gorm.DB
}

func NewPhotographerRepository(db *gorm.DB) *PhotographerRepository {
	return &PhotographerRepository{db: db}
}

func (r *PhotographerRepository) FindByID(id uint) (*model.Photographer, error) {
	var p model.Photographer
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) FindByEmail(email string) (*model.Photographer, error) {
	var p model.Photographer
	if err := r.db.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) FindByResetToken(token string) (*model.Photographer, error) {
	var p model.Photographer
	if err := r.db.Where("reset_token = ?", token).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PhotographerRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Photographer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PhotographerRepository) Create(p *model.Photographer) error {
	return r.db.Create(p).Error
}

func (r *PhotographerRepository) SetResetToken(id uint, token string, expiry time.Time) error {
	return r.db.Model(&model.Photographer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
}

func (r *PhotographerRepository) UpdatePasswordAndClearReset(id uint, passwordHash string) error {
	return r.db.Model(&model.Photographer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash":      passwordHash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error
}
