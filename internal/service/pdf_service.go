package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Paul-Briman/lumina-photography/internal/common"
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"github.com/jung-kurt/gofpdf"
)

// RenderInvoicePdf produces the invoice PDF and its download filename after
// checking ownership through the invoice's gallery.
func (s *AppService) RenderInvoicePdf(ownerID, invoiceID uint) ([]byte, string, error) {
	invoice, gallery, err := s.ownedInvoice(ownerID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	photographer, err := s.repos.Photographers.FindByID(gallery.PhotographerID)
	if err != nil {
		return nil, "", common.NewInternalError("could not render invoice")
	}

	data, err := buildInvoicePdf(invoice, gallery, photographer)
	if err != nil {
		return nil, "", common.NewInternalError("could not render invoice")
	}

	filename := fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber)
	return data, filename, nil
}

func buildInvoicePdf(invoice *model.Invoice, gallery *model.Gallery, photographer *model.Photographer) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", invoice.InvoiceNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "INVOICE")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, photographer.BusinessName)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, photographer.Email)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(45, 6, "Invoice number:")
	pdf.Cell(0, 6, invoice.InvoiceNumber)
	pdf.Ln(6)
	pdf.Cell(45, 6, "Date:")
	pdf.Cell(0, 6, invoice.CreatedAt.Format("January 2, 2006"))
	pdf.Ln(6)
	pdf.Cell(45, 6, "Status:")
	pdf.Cell(0, 6, invoice.Status)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, gallery.ClientName)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Gallery: %s", gallery.Title))
	pdf.Ln(14)

	// amount is stored in minor units
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(45, 9, "Amount due:")
	pdf.Cell(0, 9, fmt.Sprintf("%.2f", float64(invoice.Amount)/100))
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.Cell(0, 5, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
