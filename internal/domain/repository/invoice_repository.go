package repository

import "github.com/domicilia/backoffice-api/internal/domain/entity"

// InvoiceFilter criterios de listado de facturas.
type InvoiceFilter struct {
	VirtualOfficeOfferID *int64
	BasicUserID          *int64
	OnlyWithOffer        bool
}

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create persiste la factura y escribe el ID generado en invoice.ID.
	Create(invoice *entity.Invoice) error
	GetByID(id int64) (*entity.Invoice, error)
	List(f InvoiceFilter) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	// LatestByCompany devuelve la referencia de la factura más reciente
	// alcanzable desde el tenant vía invoice -> virtual_office_offer -> company
	// (join indirecto deliberado del original). nil si el tenant no tiene facturas.
	LatestByCompany(companyID int64) (*entity.LatestReference, error)
}
