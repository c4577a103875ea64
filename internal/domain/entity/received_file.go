package entity

import "time"

// ReceivedFile correo entrante escaneado para un BasicUser de una Company.
// Solo metadatos: el almacenamiento del archivo es un colaborador externo.
type ReceivedFile struct {
	ID               int64
	CompanyID        int64
	BasicUserID      *int64
	ReceivedFromName *string
	RecipientName    *string
	RecipientEmail   *string
	CourrielObject   *string
	Resume           *string
	Status           *string
	FileURL          *string
	SendAt           *time.Time
	UploadedAt       *time.Time
	IsSent           bool
	IsArchived       bool
}
