package model

import "time"

const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// ValidInvoiceStatus reports whether s is one of the known invoice states.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	GalleryID     uint    `json:"galleryId" gorm:"not null;index"`
	Gallery       Gallery `json:"gallery,omitempty" gorm:"foreignKey:GalleryID;references:ID;constraint:OnDelete:CASCADE;"`
	InvoiceNumber string  `json:"invoiceNumber" gorm:"not null"`
	// Amount is stored in minor currency units (cents/kobo); callers round
	// before submission.
	Amount    int64     `json:"amount" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:pending"`
	PdfPath   *string   `json:"pdfPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
