package usecase

import (
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
	"github.com/domicilia/backoffice-api/pkg/slug"
)

// CompanyUseCase aplica reglas de negocio para los tenants.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create da de alta una Company. El slug se deriva del nombre y debe ser
// único: dos empresas con el mismo nombre normalizado no pueden convivir.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	s := slug.Make(in.Name)
	existing, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSlugAlreadyExists
	}

	now := time.Now()
	company := &entity.Company{
		Slug:        s,
		Name:        in.Name,
		Description: in.Description,
		LegalForm:   in.LegalForm,
		Phone:       in.Phone,
		Email:       in.Email,
		AddressLine: in.AddressLine,
		PostalCode:  in.PostalCode,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una Company por ID.
func (uc *CompanyUseCase) GetByID(id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// GetBySlug obtiene una Company por su slug público.
func (uc *CompanyUseCase) GetBySlug(s string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetBySlug(s)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// List lista las Companies con paginación.
func (uc *CompanyUseCase) List(limit, offset int) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Update aplica una actualización parcial. El slug nunca cambia después del
// alta: es la clave pública del tenant (URLs, scoping de ofertas).
func (uc *CompanyUseCase) Update(id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Description != nil {
		company.Description = in.Description
	}
	if in.LegalForm != nil {
		company.LegalForm = in.LegalForm
	}
	if in.Phone != nil {
		company.Phone = in.Phone
	}
	if in.Email != nil {
		company.Email = in.Email
	}
	if in.AddressLine != nil {
		company.AddressLine = in.AddressLine
	}
	if in.PostalCode != nil {
		company.PostalCode = in.PostalCode
	}
	if in.City != nil {
		company.City = in.City
	}
	if in.State != nil {
		company.State = in.State
	}
	if in.Country != nil {
		company.Country = in.Country
	}
	if in.LogoURL != nil {
		company.LogoURL = in.LogoURL
	}
	if in.ManagePlanIsActive != nil {
		company.ManagePlanIsActive = *in.ManagePlanIsActive
	}
	if in.VirtualOfficeIsActive != nil {
		company.VirtualOfficeIsActive = *in.VirtualOfficeIsActive
	}
	if in.PostMailManagementIsActive != nil {
		company.PostMailManagementIsActive = *in.PostMailManagementIsActive
	}
	if in.MailScanningIsActive != nil {
		company.MailScanningIsActive = *in.MailScanningIsActive
	}
	if in.InvoiceOfficeRef != nil {
		company.InvoiceOfficeRef = in.InvoiceOfficeRef
	}
	if in.InvoiceVirtualOfficeRef != nil {
		company.InvoiceVirtualOfficeRef = in.InvoiceVirtualOfficeRef
	}
	if in.IsBanned != nil {
		company.IsBanned = *in.IsBanned
	}
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// Delete elimina una Company.
func (uc *CompanyUseCase) Delete(id int64) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                         c.ID,
		Slug:                       c.Slug,
		Name:                       c.Name,
		Description:                c.Description,
		LegalForm:                  c.LegalForm,
		Phone:                      c.Phone,
		Email:                      c.Email,
		LogoURL:                    c.LogoURL,
		AddressLine:                c.AddressLine,
		PostalCode:                 c.PostalCode,
		City:                       c.City,
		State:                      c.State,
		Country:                    c.Country,
		ManagePlanIsActive:         c.ManagePlanIsActive,
		VirtualOfficeIsActive:      c.VirtualOfficeIsActive,
		PostMailManagementIsActive: c.PostMailManagementIsActive,
		MailScanningIsActive:       c.MailScanningIsActive,
		InvoiceOfficeRef:           c.InvoiceOfficeRef,
		InvoiceVirtualOfficeRef:    c.InvoiceVirtualOfficeRef,
		IsBanned:                   c.IsBanned,
		CreatedAt:                  c.CreatedAt,
	}
}
