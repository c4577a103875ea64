package entity

import "time"

// SupportingFile justificante que un BasicUser aporta para un tipo de
// documento de domiciliación (KBIS, identidad, etc.).
type SupportingFile struct {
	ID          int64
	BasicUserID int64
	FileTypeID  int64
	Note        *string
	FileURL     *string
	IsValidate  bool
	ValidateAt  *time.Time
	CreatedAt   time.Time
}
