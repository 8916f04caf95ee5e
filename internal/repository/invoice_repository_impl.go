package repository

import (
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) FindByID(id uint) (*model.Invoice, error) {
	var inv model.Invoice
	if err := r.db.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListByPhotographer returns the invoices for every gallery the photographer
// owns, newest first, with the owning gallery attached.
func (r *InvoiceRepository) ListByPhotographer(photographerID uint) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.Preload("Gallery").
		Joins("JOIN galleries ON galleries.id = invoices.gallery_id").
		Where("galleries.photographer_id = ?", photographerID).
		Order("invoices.created_at DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) Create(inv *model.Invoice) error {
	return r.db.Create(inv).Error
}

func (r *InvoiceRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Invoice{}).Where("id = ?", id).Update("status", status).Error
}

func (r *InvoiceRepository) SetPdfPath(id uint, path string) error {
	return r.db.Model(&model.Invoice{}).Where("id = ?", id).Update("pdf_path", path).Error
}
