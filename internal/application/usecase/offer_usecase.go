package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/ports"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
	"github.com/domicilia/backoffice-api/pkg/logger"
)

// OfferUseCase gestiona las ofertas de bureau virtual de cada tenant. El alta
// tiene un efecto colateral en el proveedor de pagos: producto + precio
// recurrente mensual. Si el proveedor falla, la oferta recién creada se
// elimina para no dejar ofertas sin precio cobrable.
type OfferUseCase struct {
	offers    repository.VirtualOfficeOfferRepository
	companies repository.CompanyRepository
	payments  ports.PaymentService
	log       *logger.Logger
}

// NewOfferUseCase construye el caso de uso de ofertas.
func NewOfferUseCase(offers repository.VirtualOfficeOfferRepository, companies repository.CompanyRepository, payments ports.PaymentService, log *logger.Logger) *OfferUseCase {
	return &OfferUseCase{offers: offers, companies: companies, payments: payments, log: log}
}

// Create da de alta la oferta y la registra en el proveedor de pagos.
// Orden deliberado: primero la fila (para tener ID), después el proveedor;
// un fallo del proveedor revierte el alta local (delete compensatorio).
func (uc *OfferUseCase) Create(ctx context.Context, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if in.Name == "" || in.Price <= 0 {
		return nil, fmt.Errorf("%w: name y price (> 0) son obligatorios", domain.ErrInvalidInput)
	}
	company, err := uc.companies.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	offer := &entity.VirtualOfficeOffer{
		CompanyID:   in.CompanyID,
		Name:        in.Name,
		Description: in.Description,
		Features:    in.Features,
		Price:       decimal.NewFromFloat(in.Price),
		IsTagged:    in.IsTagged,
		Tag:         in.Tag,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.offers.Create(offer); err != nil {
		return nil, err
	}

	product, err := uc.payments.CreateSubscriptionProduct(ctx, ports.CreateProductInput{
		Name:         offer.Name,
		Description:  offer.Description,
		MonthlyPrice: offer.Price,
		CompanyID:    offer.CompanyID,
		OfferID:      offer.ID,
	})
	if err != nil {
		if delErr := uc.offers.Delete(offer.ID); delErr != nil {
			uc.log.Error().Err(delErr).Int64("offer_id", offer.ID).
				Msg("no se pudo revertir la oferta tras el fallo del proveedor de pagos")
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	offer.StripeProductID = &product.ProductID
	offer.StripePriceID = &product.PriceID
	if err := uc.offers.Update(offer); err != nil {
		return nil, err
	}

	return uc.toResponse(offer, company), nil
}

// GetByID obtiene una oferta con su empresa embebida.
func (uc *OfferUseCase) GetByID(id int64) (*dto.OfferResponse, error) {
	offer, err := uc.offers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companies.GetByID(offer.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(offer, company), nil
}

// List lista ofertas, opcionalmente restringidas a un tenant por ID o slug.
func (uc *OfferUseCase) List(f repository.OfferFilter) ([]dto.OfferResponse, error) {
	if f.CompanySlug != "" && f.CompanyID == nil {
		company, err := uc.companies.GetBySlug(f.CompanySlug)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}
		f.CompanyID = &company.ID
	}

	list, err := uc.offers.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, offer := range list {
		company, err := uc.companies.GetByID(offer.CompanyID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(offer, company))
	}
	return items, nil
}

// Update aplica una actualización parcial. El precio local puede divergir del
// precio en el proveedor: los precios Stripe son inmutables y el re-alta queda
// fuera de este caso de uso.
func (uc *OfferUseCase) Update(id int64, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	offer, err := uc.offers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		offer.Name = *in.Name
	}
	if in.Description != nil {
		offer.Description = in.Description
	}
	if in.Features != nil {
		offer.Features = *in.Features
	}
	if in.Price != nil {
		offer.Price = decimal.NewFromFloat(*in.Price)
	}
	if in.IsTagged != nil {
		offer.IsTagged = *in.IsTagged
	}
	if in.Tag != nil {
		offer.Tag = in.Tag
	}
	offer.UpdatedAt = time.Now()

	if err := uc.offers.Update(offer); err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(offer.CompanyID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(offer, company), nil
}

// Delete elimina una oferta.
func (uc *OfferUseCase) Delete(id int64) error {
	offer, err := uc.offers.GetByID(id)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrNotFound
	}
	return uc.offers.Delete(id)
}

func (uc *OfferUseCase) toResponse(o *entity.VirtualOfficeOffer, c *entity.Company) *dto.OfferResponse {
	price, _ := o.Price.Float64()
	created := o.CreatedAt
	out := &dto.OfferResponse{
		ID:            o.ID,
		Name:          o.Name,
		Description:   o.Description,
		Features:      o.Features,
		MonthlyPrice:  price,
		IsTagged:      o.IsTagged,
		Tag:           o.Tag,
		StripePriceID: o.StripePriceID,
		CreatedAt:     &created,
	}
	if c != nil {
		out.Company = &dto.OfferCompany{
			ID:      c.ID,
			Name:    c.Name,
			Slug:    c.Slug,
			Address: c.AddressLine,
			Email:   c.Email,
			Phone:   c.Phone,
		}
	}
	return out
}
