package dto

import "time"

// CreateCompanyRequest alta de una Company. El slug se deriva del nombre.
type CreateCompanyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LegalForm   *string `json:"legal_form"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	AddressLine *string `json:"address_line"`
	PostalCode  *string `json:"postal_code"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Country     *string `json:"country"`
}

// UpdateCompanyRequest actualización parcial de una Company (punteros = campo presente).
type UpdateCompanyRequest struct {
	Name                       *string `json:"name"`
	Description                *string `json:"description"`
	LegalForm                  *string `json:"legal_form"`
	Phone                      *string `json:"phone"`
	Email                      *string `json:"email"`
	AddressLine                *string `json:"address_line"`
	PostalCode                 *string `json:"postal_code"`
	City                       *string `json:"city"`
	State                      *string `json:"state"`
	Country                    *string `json:"country"`
	LogoURL                    *string `json:"logo_url"`
	ManagePlanIsActive         *bool   `json:"manage_plan_is_active"`
	VirtualOfficeIsActive      *bool   `json:"virtual_office_is_active"`
	PostMailManagementIsActive *bool   `json:"post_mail_management_is_active"`
	MailScanningIsActive       *bool   `json:"mail_scanning_is_active"`
	InvoiceOfficeRef           *string `json:"invoice_office_ref"`
	InvoiceVirtualOfficeRef    *string `json:"invoice_virtual_office_ref"`
	IsBanned                   *bool   `json:"is_banned"`
}

// CompanyResponse salida de una Company.
type CompanyResponse struct {
	ID                         int64     `json:"id"`
	Slug                       string    `json:"slug"`
	Name                       string    `json:"name"`
	Description                *string   `json:"description"`
	LegalForm                  *string   `json:"legalForm"`
	Phone                      *string   `json:"phone"`
	Email                      *string   `json:"email"`
	LogoURL                    *string   `json:"logoUrl"`
	AddressLine                *string   `json:"addressLine"`
	PostalCode                 *string   `json:"postalCode"`
	City                       *string   `json:"city"`
	State                      *string   `json:"state"`
	Country                    *string   `json:"country"`
	ManagePlanIsActive         bool      `json:"managePlanIsActive"`
	VirtualOfficeIsActive      bool      `json:"virtualOfficeIsActive"`
	PostMailManagementIsActive bool      `json:"postMailManagementIsActive"`
	MailScanningIsActive       bool      `json:"mailScanningIsActive"`
	InvoiceOfficeRef           *string   `json:"invoiceOfficeRef"`
	InvoiceVirtualOfficeRef    *string   `json:"invoiceVirtualOfficeRef"`
	IsBanned                   bool      `json:"isBanned"`
	CreatedAt                  time.Time `json:"createdAt"`
}

// ── Datos de empresa para el RAG del chat ────────────────────────────────────

// CompanyRAGData estructura que consume el asistente IA como contexto.
// Las claves están en francés porque el prompt y el frontend lo están.
type CompanyRAGData struct {
	Entreprise    RAGEntreprise    `json:"entreprise"`
	Domiciliation RAGDomiciliation `json:"domiciliation"`
}

// RAGEntreprise bloque de identidad de la empresa.
type RAGEntreprise struct {
	Nom            string            `json:"nom"`
	Description    *string           `json:"description"`
	Telephone      *string           `json:"telephone"`
	Email          *string           `json:"email"`
	Adresse        RAGAdresse        `json:"adresse"`
	Horaires       map[string]string `json:"horaires_ouverture,omitempty"`
	ServicesActifs map[string]bool   `json:"services_actifs"`
}

// RAGAdresse dirección postal.
type RAGAdresse struct {
	LigneAdresse *string `json:"ligne_adresse"`
	CodePostal   *string `json:"code_postal"`
	Ville        *string `json:"ville"`
	Region       *string `json:"region"`
	Pays         *string `json:"pays"`
}

// RAGDomiciliation bloque de oferta de domiciliación.
type RAGDomiciliation struct {
	ServicesDisponibles    string         `json:"services_disponibles"`
	OffresBureauVirtuel    []RAGOffre     `json:"offres_bureau_virtuel"`
	TypesDocumentsAcceptes []RAGDocType   `json:"types_documents_acceptes"`
	ServicesCourrier       map[string]bool `json:"services_courrier"`
}

// RAGOffre oferta de bureau virtual resumida para el contexto.
type RAGOffre struct {
	Nom            string   `json:"nom"`
	Description    *string  `json:"description"`
	PrixMensuel    float64  `json:"prix_mensuel"`
	ServicesInclus []string `json:"services_inclus"`
	MiseEnAvant    bool     `json:"mise_en_avant"`
	Tag            *string  `json:"tag"`
}

// RAGDocType tipo de documento aceptado.
type RAGDocType struct {
	Type        string  `json:"type"`
	Description *string `json:"description"`
	Categorie   *string `json:"categorie"`
	Pour        string  `json:"pour"` // "Auto-entrepreneur" | "Société"
}
