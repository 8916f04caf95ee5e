package repository

import (
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/model"
)

type PhotographerStore interface {
	FindByID(id uint) (*model.Photographer, error)
	FindByEmail(email string) (*model.Photographer, error)
	FindByResetToken(token string) (*model.Photographer, error)
	EmailExists(email string) (bool, error)
	Create(p *model.Photographer) error
	SetResetToken(id uint, token string, expiry time.Time) error
	UpdatePasswordAndClearReset(id uint, passwordHash string) error
}
