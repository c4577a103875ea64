package billing

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura de
// suscripción con los datos congelados del cliente y, si sigue existiendo,
// la oferta y la empresa emisora.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	offers    repository.VirtualOfficeOfferRepository
	companies repository.CompanyRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando el generador.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	offers repository.VirtualOfficeOfferRepository,
	companies repository.CompanyRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoices:  invoices,
		offers:    offers,
		companies: companies,
		generator: generator,
	}
}

// DownloadInvoicePDF recupera la factura y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	// Oferta y empresa son opcionales: la factura congela los datos del
	// cliente y el PDF sale aunque la oferta haya sido eliminada.
	var offer *entity.VirtualOfficeOffer
	var company *entity.Company
	if inv.VirtualOfficeOfferID != nil {
		offer, err = uc.offers.GetByID(*inv.VirtualOfficeOfferID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener oferta: %w", err)
		}
		if offer != nil {
			company, err = uc.companies.GetByID(offer.CompanyID)
			if err != nil {
				return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
			}
		}
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company, offer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("facture_%s.pdf", inv.Reference)
	return pdfBytes, filename, nil
}
