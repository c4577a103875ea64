package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company organización/tenant del sistema. Es la frontera multi-tenant de
// identidades, facturas, ofertas y archivos.
type Company struct {
	ID                         int64
	Slug                       string
	Name                       string
	Description                *string
	LegalForm                  *string
	NifNumber                  *string
	StatNumber                 *string
	LogoURL                    *string
	Phone                      *string
	Email                      *string
	SocialLinks                map[string]string // columna JSON
	AddressLine                *string
	PostalCode                 *string
	City                       *string
	State                      *string
	Country                    *string
	GoogleMapIframe            *string
	BusinessHour               map[string]string // columna JSON, horarios por día
	ManagePlanIsActive         bool
	VirtualOfficeIsActive      bool
	PostMailManagementIsActive bool
	MailScanningIsActive       bool
	DigicodeIsActive           bool
	ElectronicSignatureIsActive bool
	TVAIsActive                bool
	TVA                        *decimal.Decimal
	StripePrivateKey           *string
	StripePublicKey            *string
	StripeWebhookSecret        *string
	InvoiceOfficeRef           *string
	InvoiceVirtualOfficeRef    *string
	IsBanned                   bool
	ColorThemeID               *int64
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}
