// Package pdf genera la representación gráfica de las facturas de
// suscripción de bureau virtual.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa domiciliataria  │  N° Facture + Date       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÉMETTEUR: Dirección / Tel / Email                          │
//	│  CLIENT: datos congelados en la factura                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DÉTAIL: oferta, periodo, duración                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAUX: HT / TVA / TOTAL TTC                               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appbilling "github.com/domicilia/backoffice-api/internal/application/billing"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que implementa el puerto.
var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF genera el PDF y devuelve sus bytes. company y offer
// pueden ser nil: la factura congela los datos del cliente.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	company *entity.Company,
	offer *entity.VirtualOfficeOffer,
) ([]byte, error) {
	issuerName := "—"
	if company != nil {
		issuerName = company.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Facture "+invoice.Reference, true).
		WithAuthor(issuerName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, issuerName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if company != nil {
		m.AddRows(issuerRow(company))
	}
	m.AddRows(clientRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRow(invoice, offer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ────────────────────────────────────────────────────────────────

// headerRow: empresa (izq) y referencia + fecha (der).
func headerRow(invoice *entity.Invoice, issuerName string) core.Row {
	date := invoice.IssueDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(issuerName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Domiciliation commerciale", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date : "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// issuerRow: datos de la empresa domiciliataria.
func issuerRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ÉMETTEUR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Adresse : %s   |   Tél : %s   |   Email : %s",
				orDash(company.AddressLine),
				orDash(company.Phone),
				orDash(company.Email),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// clientRow: datos del cliente congelados en la factura.
func clientRow(invoice *entity.Invoice) core.Row {
	address := fmt.Sprintf("%s, %s %s, %s",
		nonEmpty(invoice.UserAddressLine, "—"),
		invoice.UserPostalCode,
		invoice.UserCity,
		nonEmpty(invoice.UserCountry, "—"),
	)
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.UserFirstName+" "+invoice.UserName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email : %s   |   %s", invoice.UserEmail, address),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detailRow: oferta suscrita, inicio y duración.
func detailRow(invoice *entity.Invoice, offer *entity.VirtualOfficeOffer) core.Row {
	offerName := "Abonnement bureau virtuel"
	if offer != nil {
		offerName = offer.Name
	}
	period := fmt.Sprintf("Début : %s   |   Durée : %d %s",
		invoice.StartSubscription.Format("02/01/2006"),
		invoice.Duration,
		durationLabel(invoice.DurationType),
	)
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DÉTAIL", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(offerName, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(period, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// totalsRow: HT, TVA y total alineados a la derecha.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	net := invoice.Amount
	if invoice.AmountNet != nil {
		net = *invoice.AmountNet
	}
	tva := invoice.Amount.Sub(net)
	currency := nonEmpty(invoice.Currency, "EUR")

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Total HT :"),
			label("TVA :"),
			grandLabel("TOTAL TTC :"),
		),
		col.New(3).Add(
			value(money(net, currency)),
			value(money(tva, currency)),
			grandValue(money(invoice.Amount, currency)),
		),
		col.New(3),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Facture générée automatiquement. "+
				"Conservez ce document comme justificatif de votre abonnement de domiciliation.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func money(d decimal.Decimal, currency string) string {
	symbol := currency
	if currency == "EUR" {
		symbol = "€"
	}
	return d.StringFixed(2) + " " + symbol
}

func durationLabel(t string) string {
	switch t {
	case "hourly":
		return "heure(s)"
	case "daily":
		return "jour(s)"
	case "monthly":
		return "mois"
	case "annualy":
		return "an(s)"
	}
	return t
}
