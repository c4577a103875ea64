package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// CreateProductInput datos para dar de alta una oferta en el proveedor de pagos.
type CreateProductInput struct {
	Name         string
	Description  *string
	MonthlyPrice decimal.Decimal
	CompanyID    int64
	OfferID      int64
}

// SubscriptionProduct identificadores devueltos por el proveedor.
type SubscriptionProduct struct {
	ProductID string
	PriceID   string
}

// PaymentService puerto de salida hacia el proveedor de pagos (Stripe).
// Solo se usa como efecto colateral de la creación de ofertas; el resto de la
// integración de pagos queda fuera de este servicio.
type PaymentService interface {
	CreateSubscriptionProduct(ctx context.Context, in CreateProductInput) (*SubscriptionProduct, error)
}
