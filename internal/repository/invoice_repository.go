package repository

import "github.com/Paul-Briman/lumina-photography/internal/model"

type InvoiceStore interface {
	FindByID(id uint) (*model.Invoice, error)
	ListByPhotographer(photographerID uint) ([]model.Invoice, error)
	Create(inv *model.Invoice) error
	UpdateStatus(id uint, status string) error
	SetPdfPath(id uint, path string) error
}
