package billing

import (
	"context"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación gráfica de una factura de
// suscripción. La empresa y la oferta pueden ser nil: la factura congela los
// datos del cliente y el PDF debe poder salir aunque la oferta haya muerto.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *entity.Invoice, company *entity.Company, offer *entity.VirtualOfficeOffer) ([]byte, error)
}
