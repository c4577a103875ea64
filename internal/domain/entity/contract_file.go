package entity

import "time"

// ContractFile contrato de domiciliación entre un BasicUser y una Company,
// con su estado de firma electrónica.
type ContractFile struct {
	ID                     int64
	CompanyID              int64
	BasicUserID            int64
	ContractFileURL        *string
	CompensatoryFileURL    *string
	SignedFileURL          *string
	Tag                    *string
	IsSignedByUser         bool
	IsSignedByAdmin        bool
	YousignProcedureID     *string
	YousignSignatureDate   *time.Time
	YousignCompletionDate  *time.Time
	SignatureStatus        *string
	CreatedAt              time.Time
}
