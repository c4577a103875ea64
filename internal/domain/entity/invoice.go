package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura de suscripción.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"

	SubscriptionConfirmed = "confirmed"
	SubscriptionPending   = "pending"
)

// Invoice factura de suscripción de bureau virtual. Pertenece a un BasicUser
// y, vía la oferta, a una Company. ReferenceNum es el contador monótono por
// tenant; el ordenamiento se define dentro de cada Company, no globalmente.
type Invoice struct {
	ID                   int64
	Reference            string
	ReferenceNum         int64
	UserName             string
	UserFirstName        string
	UserEmail            string
	UserAddressLine      string
	UserCity             string
	UserState            string
	UserPostalCode       string
	UserCountry          string
	IssueDate            time.Time
	StartSubscription    time.Time
	Duration             int
	DurationType         string // hourly, daily, monthly, annualy
	Note                 *string
	Amount               decimal.Decimal
	AmountNet            *decimal.Decimal
	Currency             string
	Status               string // pending, paid, ...
	SubscriptionStatus   string // confirmed si Status == paid, si no pending
	PaymentMethod        string
	StripePaymentID      *string
	CompanyTVA           *decimal.Decimal
	IsProcessed          bool
	IsArchived           bool
	BasicUserID          int64
	VirtualOfficeOfferID *int64
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// DeriveSubscriptionStatus aplica la regla del original: confirmed solo con factura pagada.
func DeriveSubscriptionStatus(status string) string {
	if status == InvoiceStatusPaid {
		return SubscriptionConfirmed
	}
	return SubscriptionPending
}

// LatestReference resultado de la consulta de numeración por tenant.
type LatestReference struct {
	ReferenceNum            int64
	InvoiceOfficeRef        *string
	InvoiceVirtualOfficeRef *string
}
