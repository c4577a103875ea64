package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/ports"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
	"github.com/domicilia/backoffice-api/pkg/logger"
)

func newOfferFixture() (*usecase.OfferUseCase, *fakeOfferRepo, *fakePayment) {
	offers := &fakeOfferRepo{offers: map[int64]*entity.VirtualOfficeOffer{}}
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		10: {ID: 10, Name: "Acme Domiciliation", Slug: "acme-domiciliation"},
	}, nextID: 10}
	payments := &fakePayment{product: &ports.SubscriptionProduct{ProductID: "prod_123", PriceID: "price_456"}}
	log := logger.New(logger.Config{Level: "error"})
	return usecase.NewOfferUseCase(offers, companies, payments, log), offers, payments
}

func TestOfferCreate_RegistraProductoYPrecio(t *testing.T) {
	uc, offers, payments := newOfferFixture()

	out, err := uc.Create(context.Background(), dto.CreateOfferRequest{
		Name:      "Pack Pro",
		Price:     29.90,
		Features:  []string{"courrier", "scan"},
		CompanyID: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pack Pro", out.Name)
	assert.Equal(t, 29.90, out.MonthlyPrice)
	require.NotNil(t, out.StripePriceID)
	assert.Equal(t, "price_456", *out.StripePriceID)
	require.NotNil(t, out.Company)
	assert.Equal(t, "acme-domiciliation", out.Company.Slug)

	// El proveedor recibe el precio como decimal exacto, no como float.
	assert.True(t, payments.lastIn.MonthlyPrice.Equal(decimal.NewFromFloat(29.90)))

	stored := offers.offers[out.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "prod_123", *stored.StripeProductID)
}

func TestOfferCreate_FalloDelProveedorRevierteElAlta(t *testing.T) {
	uc, offers, payments := newOfferFixture()
	payments.err = errors.New("stripe: api key inválida")

	_, err := uc.Create(context.Background(), dto.CreateOfferRequest{
		Name:      "Pack Pro",
		Price:     29.90,
		CompanyID: 10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)

	// Delete compensatorio: la fila creada antes de llamar al proveedor
	// no debe sobrevivir al fallo.
	assert.Empty(t, offers.offers)
	assert.Equal(t, []int64{1}, offers.deleted)
}

func TestOfferCreate_EmpresaInexistente(t *testing.T) {
	uc, _, payments := newOfferFixture()

	_, err := uc.Create(context.Background(), dto.CreateOfferRequest{
		Name:      "Pack Pro",
		Price:     29.90,
		CompanyID: 99,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, payments.calls, "sin empresa no se llama al proveedor")
}

func TestOfferCreate_PrecioInvalido(t *testing.T) {
	uc, _, _ := newOfferFixture()

	_, err := uc.Create(context.Background(), dto.CreateOfferRequest{Name: "Pack", Price: 0, CompanyID: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOfferList_PorSlugDelTenant(t *testing.T) {
	uc, offers, _ := newOfferFixture()
	offers.offers[1] = &entity.VirtualOfficeOffer{ID: 1, CompanyID: 10, Name: "Pack A", Price: decimal.NewFromInt(10)}
	offers.offers[2] = &entity.VirtualOfficeOffer{ID: 2, CompanyID: 20, Name: "Pack B", Price: decimal.NewFromInt(20)}
	offers.nextID = 2

	out, err := uc.List(repository.OfferFilter{CompanySlug: "acme-domiciliation"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pack A", out[0].Name)
}

func TestOfferList_SlugDesconocido(t *testing.T) {
	uc, _, _ := newOfferFixture()

	_, err := uc.List(repository.OfferFilter{CompanySlug: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOfferUpdate_Parcial(t *testing.T) {
	uc, offers, _ := newOfferFixture()
	desc := "antigua"
	offers.offers[1] = &entity.VirtualOfficeOffer{ID: 1, CompanyID: 10, Name: "Pack A", Description: &desc, Price: decimal.NewFromInt(10)}
	offers.nextID = 1

	newPrice := 15.50
	out, err := uc.Update(1, dto.UpdateOfferRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 15.50, out.MonthlyPrice)
	assert.Equal(t, "Pack A", out.Name, "los campos ausentes no se tocan")
	require.NotNil(t, out.Description)
	assert.Equal(t, "antigua", *out.Description)
}
