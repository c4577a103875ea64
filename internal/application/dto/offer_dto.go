package dto

import "time"

// CreateOfferRequest alta de una oferta de bureau virtual.
type CreateOfferRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
	Price       float64  `json:"price"`
	IsTagged    bool     `json:"is_tagged"`
	Tag         *string  `json:"tag"`
	CompanyID   int64    `json:"id_company"`
}

// UpdateOfferRequest actualización parcial de una oferta.
type UpdateOfferRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Price       *float64  `json:"price"`
	IsTagged    *bool     `json:"is_tagged"`
	Tag         *string   `json:"tag"`
}

// OfferCompany empresa embebida en la salida de una oferta.
type OfferCompany struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
}

// OfferResponse salida de una oferta con su empresa.
type OfferResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   *string       `json:"description"`
	Features      []string      `json:"features"`
	MonthlyPrice  float64       `json:"monthlyPrice"`
	IsTagged      bool          `json:"isTagged"`
	Tag           *string       `json:"tag"`
	StripePriceID *string       `json:"stripePriceId,omitempty"`
	CreatedAt     *time.Time    `json:"createdAt"`
	Company       *OfferCompany `json:"company,omitempty"`
}

// CreateVirtualOfficeRequest alta de la entidad legal domiciliada.
type CreateVirtualOfficeRequest struct {
	Name           string  `json:"virtual_office_name"`
	LegalForm      *string `json:"virtual_office_legal_form"`
	Siret          *string `json:"virtual_office_siret"`
	Siren          *string `json:"virtual_office_siren"`
	RCS            *string `json:"virtual_office_rcs"`
	TVA            *string `json:"virtual_office_tva"`
	CategoryFileID *int64  `json:"id_category_file"`
	BasicUserID    int64   `json:"id_basic_user"`
}

// VirtualOfficeResponse salida de la entidad legal.
type VirtualOfficeResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	LegalForm      *string `json:"legalForm"`
	Siret          *string `json:"siret"`
	Siren          *string `json:"siren"`
	RCS            *string `json:"rcs"`
	TVA            *string `json:"tva"`
	CategoryFileID *int64  `json:"idCategoryFile"`
	BasicUserID    int64   `json:"idBasicUser"`
}
