package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `
	id, reference, reference_num, user_name, user_first_name, user_email,
	user_address_line, user_city, user_state, user_postal_code, user_country,
	issue_date, start_subscription, duration, duration_type, note,
	amount, amount_net, currency, status, subscription_status, payment_method,
	stripe_payment_id, company_tva, is_processed, is_archived,
	id_basic_user, id_virtual_office_offer, created_at, updated_at`

func scanInvoiceInto(inv *entity.Invoice, row interface{ Scan(...any) error }) error {
	return row.Scan(
		&inv.ID, &inv.Reference, &inv.ReferenceNum, &inv.UserName, &inv.UserFirstName,
		&inv.UserEmail, &inv.UserAddressLine, &inv.UserCity, &inv.UserState,
		&inv.UserPostalCode, &inv.UserCountry,
		&inv.IssueDate, &inv.StartSubscription, &inv.Duration, &inv.DurationType, &inv.Note,
		&inv.Amount, &inv.AmountNet, &inv.Currency, &inv.Status, &inv.SubscriptionStatus,
		&inv.PaymentMethod, &inv.StripePaymentID, &inv.CompanyTVA,
		&inv.IsProcessed, &inv.IsArchived,
		&inv.BasicUserID, &inv.VirtualOfficeOfferID, &inv.CreatedAt, &inv.UpdatedAt,
	)
}

// Create persiste la factura y escribe el ID generado.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoice (reference, reference_num, user_name, user_first_name,
			user_email, user_address_line, user_city, user_state, user_postal_code,
			user_country, issue_date, start_subscription, duration, duration_type,
			note, amount, amount_net, currency, status, subscription_status,
			payment_method, stripe_payment_id, company_tva, is_processed, is_archived,
			id_basic_user, id_virtual_office_offer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.Reference, invoice.ReferenceNum, invoice.UserName, invoice.UserFirstName,
		invoice.UserEmail, invoice.UserAddressLine, invoice.UserCity, invoice.UserState,
		invoice.UserPostalCode, invoice.UserCountry,
		invoice.IssueDate, invoice.StartSubscription, invoice.Duration, invoice.DurationType,
		invoice.Note, invoice.Amount, invoice.AmountNet, invoice.Currency,
		invoice.Status, invoice.SubscriptionStatus, invoice.PaymentMethod,
		invoice.StripePaymentID, invoice.CompanyTVA, invoice.IsProcessed, invoice.IsArchived,
		invoice.BasicUserID, invoice.VirtualOfficeOfferID, invoice.CreatedAt, invoice.UpdatedAt,
	).Scan(&invoice.ID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoice WHERE id = $1`
	var inv entity.Invoice
	err := scanInvoiceInto(&inv, r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List devuelve facturas según el filtro.
func (r *InvoiceRepo) List(f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoice`
	var args []any
	var where []string
	if f.VirtualOfficeOfferID != nil {
		args = append(args, *f.VirtualOfficeOfferID)
		where = append(where, `id_virtual_office_offer = $`+strconv.Itoa(len(args)))
	}
	if f.BasicUserID != nil {
		args = append(args, *f.BasicUserID)
		where = append(where, `id_basic_user = $`+strconv.Itoa(len(args)))
	}
	if f.OnlyWithOffer {
		where = append(where, `id_virtual_office_offer IS NOT NULL`)
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY id DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoiceInto(&inv, rows); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza una factura existente.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE invoice SET reference = $2, user_name = $3, user_first_name = $4,
			user_email = $5, user_address_line = $6, user_city = $7, user_state = $8,
			user_postal_code = $9, user_country = $10, issue_date = $11,
			start_subscription = $12, duration = $13, duration_type = $14, note = $15,
			amount = $16, amount_net = $17, currency = $18, status = $19,
			subscription_status = $20, payment_method = $21, stripe_payment_id = $22,
			company_tva = $23, is_processed = $24, is_archived = $25, updated_at = $26
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Reference, invoice.UserName, invoice.UserFirstName,
		invoice.UserEmail, invoice.UserAddressLine, invoice.UserCity, invoice.UserState,
		invoice.UserPostalCode, invoice.UserCountry, invoice.IssueDate,
		invoice.StartSubscription, invoice.Duration, invoice.DurationType, invoice.Note,
		invoice.Amount, invoice.AmountNet, invoice.Currency, invoice.Status,
		invoice.SubscriptionStatus, invoice.PaymentMethod, invoice.StripePaymentID,
		invoice.CompanyTVA, invoice.IsProcessed, invoice.IsArchived, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// LatestByCompany devuelve la referencia de la factura más reciente del tenant.
// El tenant se alcanza vía invoice -> virtual_office_offer -> company: las
// facturas sin oferta quedan fuera de la numeración. nil si no hay filas.
func (r *InvoiceRepo) LatestByCompany(companyID int64) (*entity.LatestReference, error) {
	query := `
		SELECT i.reference_num, c.invoice_office_ref, c.invoice_virtual_office_ref
		FROM invoice i
		INNER JOIN virtual_office_offer o ON o.id = i.id_virtual_office_offer
		INNER JOIN company c ON c.id = o.id_company
		WHERE c.id = $1
		ORDER BY i.created_at DESC, i.id DESC
		LIMIT 1`
	var ref entity.LatestReference
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&ref.ReferenceNum, &ref.InvoiceOfficeRef, &ref.InvoiceVirtualOfficeRef,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest invoice by company: %w", err)
	}
	return &ref, nil
}
