package dto

import "time"

// ── Correo entrante ──────────────────────────────────────────────────────────

// CreateReceivedFileRequest registro de un correo escaneado.
type CreateReceivedFileRequest struct {
	CompanyID        int64   `json:"id_company"`
	BasicUserID      *int64  `json:"id_basic_user"`
	ReceivedFromName *string `json:"received_from_name"`
	RecipientName    *string `json:"recipient_name"`
	RecipientEmail   *string `json:"recipient_email"`
	CourrielObject   *string `json:"courriel_object"`
	Resume           *string `json:"resume"`
	Status           *string `json:"status"`
	FileURL          *string `json:"file_url"`
}

// UpdateReceivedFileRequest cambio de estado de un correo.
type UpdateReceivedFileRequest struct {
	Status     *string `json:"status"`
	Resume     *string `json:"resume"`
	IsSent     *bool   `json:"is_sent"`
	IsArchived *bool   `json:"is_archived"`
}

// ReceivedFileResponse salida de un correo entrante.
type ReceivedFileResponse struct {
	ID               int64      `json:"id"`
	CompanyID        int64      `json:"idCompany"`
	BasicUserID      *int64     `json:"idBasicUser"`
	ReceivedFromName *string    `json:"receivedFromName"`
	RecipientName    *string    `json:"recipientName"`
	RecipientEmail   *string    `json:"recipientEmail"`
	CourrielObject   *string    `json:"courrielObject"`
	Resume           *string    `json:"resume"`
	Status           *string    `json:"status"`
	FileURL          *string    `json:"fileUrl"`
	SendAt           *time.Time `json:"sendAt"`
	UploadedAt       *time.Time `json:"uploadedAt"`
	IsSent           bool       `json:"isSent"`
	IsArchived       bool       `json:"isArchived"`
}

// ── Contratos ────────────────────────────────────────────────────────────────

// CreateContractFileRequest registro de un contrato de domiciliación.
type CreateContractFileRequest struct {
	CompanyID           int64   `json:"id_company"`
	BasicUserID         int64   `json:"id_basic_user"`
	ContractFileURL     *string `json:"contract_file_url"`
	CompensatoryFileURL *string `json:"compensatory_file_url"`
	Tag                 *string `json:"tag"`
}

// UpdateContractFileRequest avance del flujo de firma.
type UpdateContractFileRequest struct {
	IsSignedByUser     *bool   `json:"is_signedBy_user"`
	IsSignedByAdmin    *bool   `json:"is_signedBy_admin"`
	SignedFileURL      *string `json:"signed_file_url"`
	YousignProcedureID *string `json:"yousign_procedure_id"`
	SignatureStatus    *string `json:"signature_status"`
}

// ContractFileResponse salida de un contrato.
type ContractFileResponse struct {
	ID                  int64      `json:"id"`
	CompanyID           int64      `json:"idCompany"`
	BasicUserID         int64      `json:"idBasicUser"`
	ContractFileURL     *string    `json:"contractFileUrl"`
	CompensatoryFileURL *string    `json:"compensatoryFileUrl"`
	SignedFileURL       *string    `json:"signedFileUrl"`
	Tag                 *string    `json:"tag"`
	IsSignedByUser      bool       `json:"isSignedByUser"`
	IsSignedByAdmin     bool       `json:"isSignedByAdmin"`
	SignatureStatus     *string    `json:"signatureStatus"`
	YousignProcedureID  *string    `json:"yousignProcedureId"`
	CreatedAt           time.Time  `json:"createdAt"`
	SignatureDate       *time.Time `json:"signatureDate"`
	CompletionDate      *time.Time `json:"completionDate"`
}

// ── Justificantes ────────────────────────────────────────────────────────────

// CreateSupportingFileRequest alta de un justificante.
type CreateSupportingFileRequest struct {
	BasicUserID int64   `json:"id_basic_user"`
	FileTypeID  int64   `json:"id_file_type"`
	Note        *string `json:"supporting_file_note"`
	FileURL     *string `json:"supporting_file_url"`
}

// UpdateSupportingFileRequest validación de un justificante.
type UpdateSupportingFileRequest struct {
	Note       *string `json:"supporting_file_note"`
	IsValidate *bool   `json:"is_validate"`
}

// SupportingFileResponse salida de un justificante.
type SupportingFileResponse struct {
	ID          int64      `json:"id"`
	BasicUserID int64      `json:"idBasicUser"`
	FileTypeID  int64      `json:"idFileType"`
	Note        *string    `json:"note"`
	FileURL     *string    `json:"fileUrl"`
	IsValidate  bool       `json:"isValidate"`
	ValidateAt  *time.Time `json:"validateAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ── Categorías y tipos ───────────────────────────────────────────────────────

// CategoryFileRequest alta/actualización de una categoría de documentos.
type CategoryFileRequest struct {
	CategoryName        string  `json:"category_name"`
	CategoryDescription *string `json:"category_description"`
	LabelID             *string `json:"label_id"`
	LabelDescription    *string `json:"label_description"`
}

// CategoryFileResponse salida de una categoría.
type CategoryFileResponse struct {
	ID                  int64   `json:"id"`
	CategoryName        string  `json:"categoryName"`
	CategoryDescription *string `json:"categoryDescription"`
	LabelID             *string `json:"labelId"`
	LabelDescription    *string `json:"labelDescription"`
}

// FileTypeRequest alta/actualización de un tipo de documento.
type FileTypeRequest struct {
	Label          string  `json:"label"`
	Description    *string `json:"description"`
	CompanyID      int64   `json:"id_company"`
	CategoryFileID *int64  `json:"id_category_file"`
	IsArchived     *bool   `json:"is_archived"`
}

// FileTypeResponse salida de un tipo de documento.
type FileTypeResponse struct {
	ID             int64   `json:"id"`
	Label          string  `json:"label"`
	Description    *string `json:"description"`
	CompanyID      int64   `json:"idCompany"`
	CategoryFileID *int64  `json:"idCategoryFile"`
	IsArchived     bool    `json:"isArchived"`
}
