package repository

import "github.com/domicilia/backoffice-api/internal/domain/entity"

// OfferFilter criterios de listado de ofertas (todos opcionales).
type OfferFilter struct {
	CompanyID   *int64
	CompanySlug string
}

// VirtualOfficeOfferRepository puerto de persistencia para las ofertas de
// bureau virtual.
type VirtualOfficeOfferRepository interface {
	// Create persiste la oferta y escribe el ID generado en offer.ID.
	Create(offer *entity.VirtualOfficeOffer) error
	GetByID(id int64) (*entity.VirtualOfficeOffer, error)
	List(f OfferFilter) ([]*entity.VirtualOfficeOffer, error)
	Update(offer *entity.VirtualOfficeOffer) error
	Delete(id int64) error
}

// VirtualOfficeRepository puerto de persistencia para la entidad legal
// domiciliada de un BasicUser.
type VirtualOfficeRepository interface {
	Create(vo *entity.VirtualOffice) error
	GetByID(id int64) (*entity.VirtualOffice, error)
	GetByBasicUser(basicUserID int64) (*entity.VirtualOffice, error)
	List(limit, offset int) ([]*entity.VirtualOffice, error)
	Update(vo *entity.VirtualOffice) error
}
