package billing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// InvoiceUseCase facturas de suscripción de bureau virtual. La pertenencia a
// un tenant es indirecta: factura -> oferta -> empresa; una factura sin
// oferta no es alcanzable desde ningún tenant.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	offers    repository.VirtualOfficeOfferRepository
	companies repository.CompanyRepository
}

// NewInvoiceUseCase construye el caso de uso de facturación.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, offers repository.VirtualOfficeOfferRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, offers: offers, companies: companies}
}

// Create registra una factura. El estado de suscripción no se acepta del
// cliente: se deriva siempre del estado de pago.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Reference == "" || in.BasicUserID == 0 {
		return nil, fmt.Errorf("%w: reference e idBasicUser son obligatorios", domain.ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount debe ser positivo", domain.ErrInvalidInput)
	}

	start, err := time.Parse(time.RFC3339, in.StartSubscription)
	if err != nil {
		// El frontend manda a veces solo la fecha.
		start, err = time.Parse("2006-01-02", in.StartSubscription)
		if err != nil {
			return nil, fmt.Errorf("%w: startSubscription inválida: %v", domain.ErrInvalidInput, err)
		}
	}

	if in.VirtualOfficeOfferID != nil {
		offer, err := uc.offers.GetByID(*in.VirtualOfficeOfferID)
		if err != nil {
			return nil, err
		}
		if offer == nil {
			return nil, fmt.Errorf("%w: la oferta no existe", domain.ErrInvalidInput)
		}
	}

	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPending
	}

	now := time.Now()
	inv := &entity.Invoice{
		Reference:            in.Reference,
		ReferenceNum:         in.ReferenceNum,
		UserName:             in.UserName,
		UserFirstName:        in.UserFirstName,
		UserEmail:            in.UserEmail,
		UserAddressLine:      deref(in.UserAddressLine),
		UserCity:             deref(in.UserCity),
		UserState:            deref(in.UserState),
		UserPostalCode:       deref(in.UserPostalCode),
		UserCountry:          deref(in.UserCountry),
		IssueDate:            now,
		StartSubscription:    start,
		Duration:             in.Duration,
		DurationType:         in.DurationType,
		Note:                 in.Note,
		Amount:               decimal.NewFromFloat(in.Amount),
		Currency:             in.Currency,
		Status:               status,
		SubscriptionStatus:   entity.DeriveSubscriptionStatus(status),
		PaymentMethod:        in.PaymentMethod,
		StripePaymentID:      in.StripePaymentID,
		BasicUserID:          in.BasicUserID,
		VirtualOfficeOfferID: in.VirtualOfficeOfferID,
		CreatedAt:            now,
	}
	if in.AmountNet != nil {
		net := decimal.NewFromFloat(*in.AmountNet)
		inv.AmountNet = &net
	}
	if in.CompanyTVA != nil {
		tva := decimal.NewFromFloat(*in.CompanyTVA)
		inv.CompanyTVA = &tva
	}

	if err := uc.invoices.Create(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, true)
}

// GetByID obtiene una factura con su oferta embebida.
func (uc *InvoiceUseCase) GetByID(id int64) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(inv, true)
}

// List lista facturas según el filtro (por oferta, por cliente, o solo las
// alcanzables desde algún tenant).
func (uc *InvoiceUseCase) List(f repository.InvoiceFilter) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoices.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		r, err := uc.toResponse(inv, true)
		if err != nil {
			return nil, err
		}
		items = append(items, *r)
	}
	return items, nil
}

// Update aplica una actualización parcial. Si ningún campo cambia el valor
// almacenado, la operación devuelve ErrNoChanges: el cliente sabe que su
// PATCH fue un no-op. Un cambio de status recalcula el estado de suscripción.
func (uc *InvoiceUseCase) Update(id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}

	changed := false
	if in.Status != nil && *in.Status != inv.Status {
		inv.Status = *in.Status
		inv.SubscriptionStatus = entity.DeriveSubscriptionStatus(inv.Status)
		changed = true
	}
	if in.PaymentMethod != nil && *in.PaymentMethod != inv.PaymentMethod {
		inv.PaymentMethod = *in.PaymentMethod
		changed = true
	}
	if in.StripePaymentID != nil && !eqPtr(in.StripePaymentID, inv.StripePaymentID) {
		inv.StripePaymentID = in.StripePaymentID
		changed = true
	}
	if in.Note != nil && !eqPtr(in.Note, inv.Note) {
		inv.Note = in.Note
		changed = true
	}
	if in.Amount != nil && !decimal.NewFromFloat(*in.Amount).Equal(inv.Amount) {
		inv.Amount = decimal.NewFromFloat(*in.Amount)
		changed = true
	}
	if in.AmountNet != nil {
		net := decimal.NewFromFloat(*in.AmountNet)
		if inv.AmountNet == nil || !net.Equal(*inv.AmountNet) {
			inv.AmountNet = &net
			changed = true
		}
	}
	if in.IsProcessed != nil && *in.IsProcessed != inv.IsProcessed {
		inv.IsProcessed = *in.IsProcessed
		changed = true
	}
	if in.IsArchived != nil && *in.IsArchived != inv.IsArchived {
		inv.IsArchived = *in.IsArchived
		changed = true
	}

	if !changed {
		return nil, domain.ErrNoChanges
	}

	now := time.Now()
	inv.UpdatedAt = &now
	if err := uc.invoices.Update(inv); err != nil {
		return nil, err
	}
	return uc.toResponse(inv, true)
}

// Latest devuelve la numeración sugerida para la próxima factura del tenant,
// junto con los prefijos configurados en la empresa. Lee sin reservar: dos
// llamadas concurrentes pueden recibir la misma sugerencia.
func (uc *InvoiceUseCase) Latest(companyID int64) (*dto.LatestInvoiceResponse, error) {
	company, err := uc.companies.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	latest, err := uc.invoices.LatestByCompany(companyID)
	if err != nil {
		return nil, err
	}

	out := &dto.LatestInvoiceResponse{
		NextReferenceNum:        1,
		InvoiceOfficeRef:        company.InvoiceOfficeRef,
		InvoiceVirtualOfficeRef: company.InvoiceVirtualOfficeRef,
	}
	if latest != nil {
		num := latest.ReferenceNum
		out.ReferenceNum = &num
		out.NextReferenceNum = num + 1
	}
	return out, nil
}

func (uc *InvoiceUseCase) toResponse(inv *entity.Invoice, embedOffer bool) (*dto.InvoiceResponse, error) {
	amount, _ := inv.Amount.Float64()
	out := &dto.InvoiceResponse{
		ID:           inv.ID,
		Reference:    inv.Reference,
		ReferenceNum: inv.ReferenceNum,
		User: dto.InvoiceUser{
			Name:        inv.UserName,
			FirstName:   inv.UserFirstName,
			Email:       inv.UserEmail,
			AddressLine: inv.UserAddressLine,
			City:        inv.UserCity,
			State:       inv.UserState,
			PostalCode:  inv.UserPostalCode,
			Country:     inv.UserCountry,
		},
		IssueDate:            inv.IssueDate,
		StartSubscription:    inv.StartSubscription,
		Duration:             inv.Duration,
		DurationType:         inv.DurationType,
		Note:                 deref(inv.Note),
		Amount:               amount,
		Currency:             inv.Currency,
		Status:               inv.Status,
		SubscriptionStatus:   inv.SubscriptionStatus,
		PaymentMethod:        inv.PaymentMethod,
		StripePaymentID:      inv.StripePaymentID,
		IsProcessed:          inv.IsProcessed,
		CreatedAt:            inv.CreatedAt,
		UpdatedAt:            inv.UpdatedAt,
		BasicUserID:          inv.BasicUserID,
		VirtualOfficeOfferID: inv.VirtualOfficeOfferID,
	}
	if inv.AmountNet != nil {
		net, _ := inv.AmountNet.Float64()
		out.AmountNet = &net
	}
	if inv.CompanyTVA != nil {
		tva, _ := inv.CompanyTVA.Float64()
		out.CompanyTVA = &tva
	}

	if embedOffer && inv.VirtualOfficeOfferID != nil {
		offer, err := uc.offers.GetByID(*inv.VirtualOfficeOfferID)
		if err != nil {
			return nil, err
		}
		if offer != nil {
			price, _ := offer.Price.Float64()
			created := offer.CreatedAt
			out.VirtualOfficeOffer = &dto.OfferResponse{
				ID:           offer.ID,
				Name:         offer.Name,
				Description:  offer.Description,
				Features:     offer.Features,
				MonthlyPrice: price,
				IsTagged:     offer.IsTagged,
				Tag:          offer.Tag,
				CreatedAt:    &created,
			}
			if company, err := uc.companies.GetByID(offer.CompanyID); err == nil && company != nil {
				out.VirtualOfficeOffer.Company = &dto.OfferCompany{
					ID:      company.ID,
					Name:    company.Name,
					Slug:    company.Slug,
					Address: company.AddressLine,
					Email:   company.Email,
					Phone:   company.Phone,
				}
			}
		}
	}
	return out, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
