package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// companyColumns columnas en el orden que espera scanCompany.
const companyColumns = `
	id, slug, name, description, legal_form, nif_number, stat_number, logo_url,
	phone, email, social_links, address_line, postal_code, city, state, country,
	google_map_iframe, business_hour,
	manage_plan_is_active, virtual_office_is_active, post_mail_management_is_active,
	mail_scanning_is_active, digicode_is_active, electronic_signature_is_active,
	tva_is_active, tva,
	stripe_private_key, stripe_public_key, stripe_webhook_secret,
	invoice_office_ref, invoice_virtual_office_ref,
	is_banned, color_theme_id, created_at, updated_at`

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Slug, &c.Name, &c.Description, &c.LegalForm, &c.NifNumber, &c.StatNumber, &c.LogoURL,
		&c.Phone, &c.Email, &c.SocialLinks, &c.AddressLine, &c.PostalCode, &c.City, &c.State, &c.Country,
		&c.GoogleMapIframe, &c.BusinessHour,
		&c.ManagePlanIsActive, &c.VirtualOfficeIsActive, &c.PostMailManagementIsActive,
		&c.MailScanningIsActive, &c.DigicodeIsActive, &c.ElectronicSignatureIsActive,
		&c.TVAIsActive, &c.TVA,
		&c.StripePrivateKey, &c.StripePublicKey, &c.StripeWebhookSecret,
		&c.InvoiceOfficeRef, &c.InvoiceVirtualOfficeRef,
		&c.IsBanned, &c.ColorThemeID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa y escribe el ID generado.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO company (
			slug, name, description, legal_form, nif_number, stat_number, logo_url,
			phone, email, social_links, address_line, postal_code, city, state, country,
			google_map_iframe, business_hour,
			manage_plan_is_active, virtual_office_is_active, post_mail_management_is_active,
			mail_scanning_is_active, digicode_is_active, electronic_signature_is_active,
			tva_is_active, tva,
			stripe_private_key, stripe_public_key, stripe_webhook_secret,
			invoice_office_ref, invoice_virtual_office_ref,
			is_banned, color_theme_id, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		        $29, $30, $31, $32, $33, $34)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		company.Slug, company.Name, company.Description, company.LegalForm,
		company.NifNumber, company.StatNumber, company.LogoURL,
		company.Phone, company.Email, company.SocialLinks, company.AddressLine,
		company.PostalCode, company.City, company.State, company.Country,
		company.GoogleMapIframe, company.BusinessHour,
		company.ManagePlanIsActive, company.VirtualOfficeIsActive, company.PostMailManagementIsActive,
		company.MailScanningIsActive, company.DigicodeIsActive, company.ElectronicSignatureIsActive,
		company.TVAIsActive, company.TVA,
		company.StripePrivateKey, company.StripePublicKey, company.StripeWebhookSecret,
		company.InvoiceOfficeRef, company.InvoiceVirtualOfficeRef,
		company.IsBanned, company.ColorThemeID, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlugAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id int64) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetBySlug obtiene una empresa por slug.
func (r *CompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company WHERE slug = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, slug))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by slug: %w", err)
	}
	return c, nil
}

// List devuelve empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM company ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa existente (todos los campos salvo slug).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE company SET
			name = $2, description = $3, legal_form = $4, nif_number = $5, stat_number = $6,
			logo_url = $7, phone = $8, email = $9, social_links = $10, address_line = $11,
			postal_code = $12, city = $13, state = $14, country = $15, google_map_iframe = $16,
			business_hour = $17,
			manage_plan_is_active = $18, virtual_office_is_active = $19,
			post_mail_management_is_active = $20, mail_scanning_is_active = $21,
			digicode_is_active = $22, electronic_signature_is_active = $23,
			tva_is_active = $24, tva = $25,
			stripe_private_key = $26, stripe_public_key = $27, stripe_webhook_secret = $28,
			invoice_office_ref = $29, invoice_virtual_office_ref = $30,
			is_banned = $31, color_theme_id = $32, updated_at = $33
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID,
		company.Name, company.Description, company.LegalForm, company.NifNumber, company.StatNumber,
		company.LogoURL, company.Phone, company.Email, company.SocialLinks, company.AddressLine,
		company.PostalCode, company.City, company.State, company.Country, company.GoogleMapIframe,
		company.BusinessHour,
		company.ManagePlanIsActive, company.VirtualOfficeIsActive,
		company.PostMailManagementIsActive, company.MailScanningIsActive,
		company.DigicodeIsActive, company.ElectronicSignatureIsActive,
		company.TVAIsActive, company.TVA,
		company.StripePrivateKey, company.StripePublicKey, company.StripeWebhookSecret,
		company.InvoiceOfficeRef, company.InvoiceVirtualOfficeRef,
		company.IsBanned, company.ColorThemeID, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM company WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
