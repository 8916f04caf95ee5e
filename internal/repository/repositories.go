package repository

import "gorm.io/gorm"

// Repositories bundles the per-aggregate stores handed to the service layer.
type Repositories struct {
	Photographers PhotographerStore
	Galleries     GalleryStore
	Photos        PhotoStore
	Invoices      InvoiceStore
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Photographers: NewPhotographerRepository(db),
		Galleries:     NewGalleryRepository(db),
		Photos:        NewPhotoRepository(db),
		Invoices:      NewInvoiceRepository(db),
	}
}
