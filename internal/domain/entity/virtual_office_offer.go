package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VirtualOfficeOffer oferta de domiciliación que una Company publica.
// Al crearla se da de alta también como producto/precio en Stripe.
type VirtualOfficeOffer struct {
	ID              int64
	CompanyID       int64
	Name            string
	Description     *string
	Features        []string // columna JSON
	Price           decimal.Decimal
	IsTagged        bool
	Tag             *string
	StripeProductID *string
	StripePriceID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
