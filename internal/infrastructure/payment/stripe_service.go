package payment

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/domicilia/backoffice-api/internal/application/ports"
)

var centsPerEuro = decimal.NewFromInt(100)

// Verificar en tiempo de compilación que StripeService implementa PaymentService.
var _ ports.PaymentService = (*StripeService)(nil)

// StripeService adaptador del puerto de pagos sobre el SDK oficial de Stripe.
// Da de alta cada oferta como producto con un precio recurrente mensual.
type StripeService struct {
	api *client.API
}

// NewStripeService construye el adaptador con la clave secreta de la
// plataforma.
func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

// CreateSubscriptionProduct crea el producto y su precio mensual en EUR.
// El importe va en céntimos; los metadatos enlazan el producto con la oferta
// y el tenant para poder conciliar desde el dashboard de Stripe.
func (s *StripeService) CreateSubscriptionProduct(ctx context.Context, in ports.CreateProductInput) (*ports.SubscriptionProduct, error) {
	productParams := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(in.Name),
		Metadata: map[string]string{
			"offer_id":   fmt.Sprintf("%d", in.OfferID),
			"company_id": fmt.Sprintf("%d", in.CompanyID),
		},
	}
	if in.Description != nil && *in.Description != "" {
		productParams.Description = in.Description
	}

	product, err := s.api.Products.New(productParams)
	if err != nil {
		return nil, fmt.Errorf("stripe: crear producto: %w", err)
	}

	cents := in.MonthlyPrice.Mul(centsPerEuro).IntPart()
	price, err := s.api.Prices.New(&stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(cents),
		Currency:   stripe.String(string(stripe.CurrencyEUR)),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("stripe: crear precio: %w", err)
	}

	return &ports.SubscriptionProduct{ProductID: product.ID, PriceID: price.ID}, nil
}
