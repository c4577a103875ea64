package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.VirtualOfficeOfferRepository = (*VirtualOfficeOfferRepo)(nil)

// VirtualOfficeOfferRepo implementación de VirtualOfficeOfferRepository
// (usable con pool o tx).
type VirtualOfficeOfferRepo struct {
	q Querier
}

// NewVirtualOfficeOfferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVirtualOfficeOfferRepository(q Querier) *VirtualOfficeOfferRepo {
	return &VirtualOfficeOfferRepo{q: q}
}

const offerColumns = `
	id, id_company, name, description, features, price, is_tagged, tag,
	stripe_product_id, stripe_price_id, created_at, updated_at`

// Create persiste una oferta y escribe el ID generado.
func (r *VirtualOfficeOfferRepo) Create(offer *entity.VirtualOfficeOffer) error {
	query := `
		INSERT INTO virtual_office_offer (id_company, name, description, features,
			price, is_tagged, tag, stripe_product_id, stripe_price_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		offer.CompanyID, offer.Name, offer.Description, offer.Features,
		offer.Price, offer.IsTagged, offer.Tag, offer.StripeProductID,
		offer.StripePriceID, offer.CreatedAt, offer.UpdatedAt,
	).Scan(&offer.ID)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID.
func (r *VirtualOfficeOfferRepo) GetByID(id int64) (*entity.VirtualOfficeOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM virtual_office_offer WHERE id = $1`
	var o entity.VirtualOfficeOffer
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Description, &o.Features, &o.Price,
		&o.IsTagged, &o.Tag, &o.StripeProductID, &o.StripePriceID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return &o, nil
}

// List devuelve ofertas, opcionalmente filtradas por empresa (ID o slug).
func (r *VirtualOfficeOfferRepo) List(f repository.OfferFilter) ([]*entity.VirtualOfficeOffer, error) {
	query := `SELECT o.id, o.id_company, o.name, o.description, o.features, o.price,
			o.is_tagged, o.tag, o.stripe_product_id, o.stripe_price_id, o.created_at, o.updated_at
		FROM virtual_office_offer o`
	var args []any
	var where []string
	if f.CompanySlug != "" {
		query += ` INNER JOIN company c ON c.id = o.id_company`
		args = append(args, f.CompanySlug)
		where = append(where, `c.slug = $`+strconv.Itoa(len(args)))
	}
	if f.CompanyID != nil {
		args = append(args, *f.CompanyID)
		where = append(where, `o.id_company = $`+strconv.Itoa(len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY o.id`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var list []*entity.VirtualOfficeOffer
	for rows.Next() {
		var o entity.VirtualOfficeOffer
		if err := rows.Scan(
			&o.ID, &o.CompanyID, &o.Name, &o.Description, &o.Features, &o.Price,
			&o.IsTagged, &o.Tag, &o.StripeProductID, &o.StripePriceID,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update actualiza una oferta existente.
func (r *VirtualOfficeOfferRepo) Update(offer *entity.VirtualOfficeOffer) error {
	query := `
		UPDATE virtual_office_offer SET name = $2, description = $3, features = $4,
			price = $5, is_tagged = $6, tag = $7, stripe_product_id = $8,
			stripe_price_id = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		offer.ID, offer.Name, offer.Description, offer.Features, offer.Price,
		offer.IsTagged, offer.Tag, offer.StripeProductID, offer.StripePriceID,
		offer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// Delete elimina una oferta por ID (también se usa como compensación si Stripe falla).
func (r *VirtualOfficeOfferRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM virtual_office_offer WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	return nil
}
