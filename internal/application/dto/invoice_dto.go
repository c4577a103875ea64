package dto

import "time"

// CreateInvoiceRequest alta de una factura de suscripción.
type CreateInvoiceRequest struct {
	Reference            string   `json:"reference"`
	ReferenceNum         int64    `json:"referenceNum"`
	UserName             string   `json:"userName"`
	UserFirstName        string   `json:"userFirstName"`
	UserEmail            string   `json:"userEmail"`
	UserAddressLine      *string  `json:"userAddressLine"`
	UserCity             *string  `json:"userCity"`
	UserState            *string  `json:"userState"`
	UserPostalCode       *string  `json:"userPostalCode"`
	UserCountry          *string  `json:"userCountry"`
	StartSubscription    string   `json:"startSubscription"` // fecha ISO
	Duration             int      `json:"duration"`
	DurationType         string   `json:"durationType"` // hourly, daily, monthly, annualy
	Amount               float64  `json:"amount"`
	AmountNet            *float64 `json:"amountNet"`
	Currency             string   `json:"currency"`
	Status               string   `json:"status"`
	PaymentMethod        string   `json:"paymentMethod"`
	StripePaymentID      *string  `json:"stripePaymentId"`
	BasicUserID          int64    `json:"idBasicUser"`
	VirtualOfficeOfferID *int64   `json:"idVirtualOfficeOffer"`
	Note                 *string  `json:"note"`
	CompanyTVA           *float64 `json:"companyTva"`
}

// UpdateInvoiceRequest actualización parcial; punteros nil = campo ausente.
type UpdateInvoiceRequest struct {
	Status          *string  `json:"status"`
	PaymentMethod   *string  `json:"payment_method"`
	StripePaymentID *string  `json:"stripe_payment_id"`
	Note            *string  `json:"note"`
	Amount          *float64 `json:"amount"`
	AmountNet       *float64 `json:"amount_net"`
	IsProcessed     *bool    `json:"is_processed"`
	IsArchived      *bool    `json:"is_archived"`
}

// InvoiceUser bloque de datos del cliente congelados en la factura.
type InvoiceUser struct {
	Name        string `json:"name"`
	FirstName   string `json:"firstName"`
	Email       string `json:"email"`
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	Country     string `json:"country"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID                   int64          `json:"id"`
	Reference            string         `json:"reference"`
	ReferenceNum         int64          `json:"referenceNum"`
	User                 InvoiceUser    `json:"user"`
	IssueDate            time.Time      `json:"issueDate"`
	StartSubscription    time.Time      `json:"startSubscription"`
	Duration             int            `json:"duration"`
	DurationType         string         `json:"durationType"`
	Note                 string         `json:"note"`
	Amount               float64        `json:"amount"`
	AmountNet            *float64       `json:"amountNet"`
	Currency             string         `json:"currency"`
	Status               string         `json:"status"`
	SubscriptionStatus   string         `json:"subscriptionStatus"`
	CompanyTVA           *float64       `json:"companyTva"`
	PaymentMethod        string         `json:"paymentMethod"`
	StripePaymentID      *string        `json:"stripePaymentId"`
	IsProcessed          bool           `json:"isProcessed"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            *time.Time     `json:"updatedAt"`
	BasicUserID          int64          `json:"idBasicUser"`
	VirtualOfficeOfferID *int64         `json:"idVirtualOfficeOffer"`
	VirtualOfficeOffer   *OfferResponse `json:"virtualOfficeOffer,omitempty"`
}

// LatestInvoiceResponse numeración sugerida por tenant. No reserva el número:
// dos peticiones concurrentes pueden recibir la misma sugerencia (limitación
// heredada y documentada).
type LatestInvoiceResponse struct {
	ReferenceNum            *int64  `json:"referenceNum"`
	NextReferenceNum        int64   `json:"nextReferenceNum"`
	InvoiceOfficeRef        *string `json:"invoiceOfficeRef"`
	InvoiceVirtualOfficeRef *string `json:"invoiceVirtualOfficeRef"`
}
