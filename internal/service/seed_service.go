package service

import (
	"errors"
	"log"

	"github.com/Paul-Briman/lumina-photography/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	demoEmail      = "demo@example.com"
	demoPassword   = "password123"
	demoShareToken = "demo-token-123"
)

// SeedDemoData installs the demo fixtures. It is invoked explicitly via the
// -seed flag, never during request-serving startup, and is idempotent: a
// second run is a no-op keyed on the demo account's email.
func (s *AppService) SeedDemoData() error {
	_, err := s.repos.Photographers.FindByEmail(demoEmail)
	if err == nil {
		log.Println("demo data already present, nothing to do")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	photographer := &model.Photographer{
		Email:        demoEmail,
		BusinessName: "Demo Photography",
		PasswordHash: string(hash),
	}
	if err := s.repos.Photographers.Create(photographer); err != nil {
		return err
	}

	gallery := &model.Gallery{
		PhotographerID: photographer.ID,
		Title:          "Summer Wedding 2024",
		ClientName:     "Alice & Bob",
		ShareToken:     demoShareToken,
		DownloadPin:    "1234",
	}
	if err := s.repos.Galleries.Create(gallery); err != nil {
		return err
	}

	invoice := &model.Invoice{
		GalleryID:     gallery.ID,
		InvoiceNumber: "INV-001",
		Amount:        150000, // $1500.00
		Status:        model.InvoiceStatusPending,
	}
	if err := s.repos.Invoices.Create(invoice); err != nil {
		return err
	}

	log.Printf("seeding complete, log in with %s / %s", demoEmail, demoPassword)
	return nil
}
