package service

import (
	"errors"
	"strings"

	"github.com/Paul-Briman/lumina-photography/internal/common"
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"gorm.io/gorm"
)

func (s *AppService) ListInvoices(ownerID uint) ([]model.Invoice, error) {
	invoices, err := s.repos.Invoices.ListByPhotographer(ownerID)
	if err != nil {
		return nil, common.NewInternalError("could not list invoices")
	}
	return invoices, nil
}

// CreateInvoice records a billing entry against one of the owner's galleries.
// A gallery that does not exist or belongs to someone else is a validation
// failure, mirroring the public API contract.
func (s *AppService) CreateInvoice(ownerID, galleryID uint, invoiceNumber string, amount int64, status string) (*model.Invoice, error) {
	if strings.TrimSpace(invoiceNumber) == "" {
		return nil, common.NewValidationError("invoice number is required")
	}
	if amount < 0 {
		return nil, common.NewValidationError("amount must not be negative")
	}
	if status == "" {
		status = model.InvoiceStatusPending
	}
	if !model.ValidInvoiceStatus(status) {
		return nil, common.NewValidationError("status must be pending, paid or cancelled")
	}

	gallery, err := s.repos.Galleries.FindByID(galleryID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewInternalError("could not create invoice")
	}
	if err != nil || gallery.PhotographerID != ownerID {
		return nil, common.NewValidationError("Invalid gallery")
	}

	invoice := &model.Invoice{
		GalleryID:     gallery.ID,
		InvoiceNumber: invoiceNumber,
		Amount:        amount,
		Status:        status,
	}
	if err := s.repos.Invoices.Create(invoice); err != nil {
		return nil, common.NewInternalError("could not create invoice")
	}
	return invoice, nil
}

// UpdateInvoiceStatus applies a manual status transition; nothing in the
// system transitions invoices automatically.
func (s *AppService) UpdateInvoiceStatus(ownerID, invoiceID uint, status string) (*model.Invoice, error) {
	if !model.ValidInvoiceStatus(status) {
		return nil, common.NewValidationError("status must be pending, paid or cancelled")
	}

	invoice, _, err := s.ownedInvoice(ownerID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Invoices.UpdateStatus(invoice.ID, status); err != nil {
		return nil, common.NewInternalError("could not update invoice")
	}
	invoice.Status = status
	return invoice, nil
}

// ownedInvoice resolves an invoice and enforces ownership through its
// gallery.
func (s *AppService) ownedInvoice(ownerID, invoiceID uint) (*model.Invoice, *model.Gallery, error) {
	invoice, err := s.repos.Invoices.FindByID(invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewNotFoundError("Invoice not found")
		}
		return nil, nil, common.NewInternalError("could not load invoice")
	}

	gallery, err := s.repos.Galleries.FindByID(invoice.GalleryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewNotFoundError("Gallery not found")
		}
		return nil, nil, common.NewInternalError("could not load invoice")
	}
	if gallery.PhotographerID != ownerID {
		return nil, nil, common.NewForbiddenError("You do not own this invoice")
	}
	return invoice, gallery, nil
}
