package entity

// VirtualOffice entidad legal domiciliada de un BasicUser (la "sociedad"
// que recibe el correo en la dirección de la Company).
type VirtualOffice struct {
	ID             int64
	BasicUserID    int64
	CategoryFileID *int64
	Name           string
	LegalForm      *string
	Siret          *string
	Siren          *string
	RCS            *string
	TVA            *string
}
