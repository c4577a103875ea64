package billing_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/internal/application/billing"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	rows   map[int64]*entity.Invoice
	offers map[int64]*entity.VirtualOfficeOffer // para resolver el join indirecto
	nextID int64
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	f.nextID++
	inv.ID = f.nextID
	f.rows[inv.ID] = inv
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) { return f.rows[id], nil }

func (f *fakeInvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.rows {
		if filter.VirtualOfficeOfferID != nil &&
			(inv.VirtualOfficeOfferID == nil || *inv.VirtualOfficeOfferID != *filter.VirtualOfficeOfferID) {
			continue
		}
		if filter.BasicUserID != nil && inv.BasicUserID != *filter.BasicUserID {
			continue
		}
		if filter.OnlyWithOffer && inv.VirtualOfficeOfferID == nil {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeInvoiceRepo) Update(inv *entity.Invoice) error { f.rows[inv.ID] = inv; return nil }

// LatestByCompany reproduce el join indirecto: solo cuentan las facturas cuya
// oferta pertenece a la empresa.
func (f *fakeInvoiceRepo) LatestByCompany(companyID int64) (*entity.LatestReference, error) {
	var latest *entity.Invoice
	for _, inv := range f.rows {
		if inv.VirtualOfficeOfferID == nil {
			continue
		}
		offer := f.offers[*inv.VirtualOfficeOfferID]
		if offer == nil || offer.CompanyID != companyID {
			continue
		}
		if latest == nil || inv.ID > latest.ID {
			latest = inv
		}
	}
	if latest == nil {
		return nil, nil
	}
	return &entity.LatestReference{ReferenceNum: latest.ReferenceNum}, nil
}

type fakeOfferRepo struct {
	offers map[int64]*entity.VirtualOfficeOffer
}

func (f *fakeOfferRepo) Create(o *entity.VirtualOfficeOffer) error { f.offers[o.ID] = o; return nil }
func (f *fakeOfferRepo) GetByID(id int64) (*entity.VirtualOfficeOffer, error) {
	return f.offers[id], nil
}
func (f *fakeOfferRepo) List(filter repository.OfferFilter) ([]*entity.VirtualOfficeOffer, error) {
	return nil, nil
}
func (f *fakeOfferRepo) Update(o *entity.VirtualOfficeOffer) error { f.offers[o.ID] = o; return nil }
func (f *fakeOfferRepo) Delete(id int64) error                     { delete(f.offers, id); return nil }

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error            { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) { return f.companies[id], nil }
func (f *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Update(c *entity.Company) error                    { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) Delete(id int64) error                             { delete(f.companies, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func newFixture() (*billing.InvoiceUseCase, *fakeInvoiceRepo, *fakeCompanyRepo) {
	officeRef := "FAC"
	voRef := "BV"
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		10: {ID: 10, Name: "Acme", Slug: "acme", InvoiceOfficeRef: &officeRef, InvoiceVirtualOfficeRef: &voRef},
		20: {ID: 20, Name: "Globex", Slug: "globex"},
	}}
	offers := &fakeOfferRepo{offers: map[int64]*entity.VirtualOfficeOffer{
		1: {ID: 1, CompanyID: 10, Name: "Pack Pro", Price: decimal.NewFromInt(30)},
		2: {ID: 2, CompanyID: 20, Name: "Pack Start", Price: decimal.NewFromInt(15)},
	}}
	invoices := &fakeInvoiceRepo{rows: map[int64]*entity.Invoice{}, offers: offers.offers}
	return billing.NewInvoiceUseCase(invoices, offers, companies), invoices, companies
}

func seedInvoice(f *fakeInvoiceRepo, refNum int64, offerID *int64, basicUserID int64) *entity.Invoice {
	inv := &entity.Invoice{
		Reference:            fmt.Sprintf("FAC-%d", refNum),
		ReferenceNum:         refNum,
		Status:               entity.InvoiceStatusPending,
		SubscriptionStatus:   entity.SubscriptionPending,
		Amount:               decimal.NewFromInt(30),
		BasicUserID:          basicUserID,
		VirtualOfficeOfferID: offerID,
	}
	_ = f.Create(inv)
	return inv
}

// ──────────────────────────────────────────────────────────────────────────────
// Numeración por tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestLatest_TenantSinFacturas(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Latest(10)
	require.NoError(t, err)

	assert.Nil(t, out.ReferenceNum, "sin facturas no hay última referencia")
	assert.Equal(t, int64(1), out.NextReferenceNum, "la numeración arranca en 1")
	require.NotNil(t, out.InvoiceOfficeRef)
	assert.Equal(t, "FAC", *out.InvoiceOfficeRef)
}

func TestLatest_SoloCuentanFacturasDelTenant(t *testing.T) {
	uc, invoices, _ := newFixture()
	offerAcme, offerGlobex := int64(1), int64(2)
	seedInvoice(invoices, 5, &offerAcme, 7)
	seedInvoice(invoices, 9, &offerGlobex, 8) // otro tenant

	out, err := uc.Latest(10)
	require.NoError(t, err)

	require.NotNil(t, out.ReferenceNum)
	assert.Equal(t, int64(5), *out.ReferenceNum, "la numeración es por tenant, no global")
	assert.Equal(t, int64(6), out.NextReferenceNum)
}

func TestLatest_FacturaSinOfertaNoEsAlcanzable(t *testing.T) {
	uc, invoices, _ := newFixture()
	seedInvoice(invoices, 3, nil, 7) // huérfana: sin oferta no hay tenant

	out, err := uc.Latest(10)
	require.NoError(t, err)
	assert.Nil(t, out.ReferenceNum)
	assert.Equal(t, int64(1), out.NextReferenceNum)
}

func TestLatest_EmpresaInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Latest(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_DerivaEstadoDeSuscripcion(t *testing.T) {
	uc, _, _ := newFixture()
	offerID := int64(1)

	out, err := uc.Create(dto.CreateInvoiceRequest{
		Reference:            "FAC-1",
		ReferenceNum:         1,
		UserName:             "Martin",
		UserEmail:            "client@acme.fr",
		StartSubscription:    "2026-09-01",
		Duration:             1,
		DurationType:         "monthly",
		Amount:               29.90,
		Currency:             "EUR",
		Status:               entity.InvoiceStatusPaid,
		PaymentMethod:        "card",
		BasicUserID:          7,
		VirtualOfficeOfferID: &offerID,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionConfirmed, out.SubscriptionStatus,
		"factura pagada implica suscripción confirmada")
	require.NotNil(t, out.VirtualOfficeOffer)
	assert.Equal(t, "Pack Pro", out.VirtualOfficeOffer.Name)
	assert.Equal(t, "acme", out.VirtualOfficeOffer.Company.Slug)
}

func TestCreate_EstadoPendienteNoConfirma(t *testing.T) {
	uc, _, _ := newFixture()

	out, err := uc.Create(dto.CreateInvoiceRequest{
		Reference:         "FAC-2",
		StartSubscription: "2026-09-01",
		Amount:            29.90,
		Status:            entity.InvoiceStatusPending,
		BasicUserID:       7,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionPending, out.SubscriptionStatus)
}

func TestCreate_OfertaInexistente(t *testing.T) {
	uc, _, _ := newFixture()
	offerID := int64(99)

	_, err := uc.Create(dto.CreateInvoiceRequest{
		Reference:            "FAC-3",
		StartSubscription:    "2026-09-01",
		Amount:               10,
		BasicUserID:          7,
		VirtualOfficeOfferID: &offerID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_MontoInvalido(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Create(dto.CreateInvoiceRequest{
		Reference:         "FAC-4",
		StartSubscription: "2026-09-01",
		Amount:            0,
		BasicUserID:       7,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PagoConfirmaSuscripcion(t *testing.T) {
	uc, invoices, _ := newFixture()
	offerID := int64(1)
	inv := seedInvoice(invoices, 1, &offerID, 7)

	paid := entity.InvoiceStatusPaid
	out, err := uc.Update(inv.ID, dto.UpdateInvoiceRequest{Status: &paid})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPaid, out.Status)
	assert.Equal(t, entity.SubscriptionConfirmed, out.SubscriptionStatus)
	assert.NotNil(t, out.UpdatedAt)
}

func TestUpdate_SinCambiosDevuelveErrNoChanges(t *testing.T) {
	uc, invoices, _ := newFixture()
	offerID := int64(1)
	inv := seedInvoice(invoices, 1, &offerID, 7)

	pending := entity.InvoiceStatusPending // ya es el valor almacenado
	_, err := uc.Update(inv.ID, dto.UpdateInvoiceRequest{Status: &pending})
	assert.ErrorIs(t, err, domain.ErrNoChanges)
}

func TestUpdate_FacturaInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	note := "nota"
	_, err := uc.Update(99, dto.UpdateInvoiceRequest{Note: &note})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorCliente(t *testing.T) {
	uc, invoices, _ := newFixture()
	offerID := int64(1)
	seedInvoice(invoices, 1, &offerID, 7)
	seedInvoice(invoices, 2, &offerID, 8)

	basicUserID := int64(7)
	out, err := uc.List(repository.InvoiceFilter{BasicUserID: &basicUserID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(7), out[0].BasicUserID)
}

func TestList_SoloConOferta(t *testing.T) {
	uc, invoices, _ := newFixture()
	offerID := int64(1)
	seedInvoice(invoices, 1, &offerID, 7)
	seedInvoice(invoices, 2, nil, 7)

	out, err := uc.List(repository.InvoiceFilter{OnlyWithOffer: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotNil(t, out[0].VirtualOfficeOfferID)
}
