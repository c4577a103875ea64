package usecase

import (
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// FileUseCase agrupa la gestión documental: correo entrante, contratos,
// justificantes, categorías y tipos de documento. Solo metadatos; el binario
// vive en el almacenamiento externo referenciado por las URLs.
type FileUseCase struct {
	received   repository.ReceivedFileRepository
	contracts  repository.ContractFileRepository
	supporting repository.SupportingFileRepository
	categories repository.CategoryFileRepository
	fileTypes  repository.FileTypeRepository
}

// NewFileUseCase construye el caso de uso documental.
func NewFileUseCase(
	received repository.ReceivedFileRepository,
	contracts repository.ContractFileRepository,
	supporting repository.SupportingFileRepository,
	categories repository.CategoryFileRepository,
	fileTypes repository.FileTypeRepository,
) *FileUseCase {
	return &FileUseCase{
		received:   received,
		contracts:  contracts,
		supporting: supporting,
		categories: categories,
		fileTypes:  fileTypes,
	}
}

// ── Correo entrante ──────────────────────────────────────────────────────────

// CreateReceived registra un correo escaneado.
func (uc *FileUseCase) CreateReceived(in dto.CreateReceivedFileRequest) (*dto.ReceivedFileResponse, error) {
	if in.CompanyID == 0 {
		return nil, fmt.Errorf("%w: id_company es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	f := &entity.ReceivedFile{
		CompanyID:        in.CompanyID,
		BasicUserID:      in.BasicUserID,
		ReceivedFromName: in.ReceivedFromName,
		RecipientName:    in.RecipientName,
		RecipientEmail:   in.RecipientEmail,
		CourrielObject:   in.CourrielObject,
		Resume:           in.Resume,
		Status:           in.Status,
		FileURL:          in.FileURL,
		UploadedAt:       &now,
	}
	if err := uc.received.Create(f); err != nil {
		return nil, err
	}
	return entityToReceivedFileResponse(f), nil
}

// GetReceived obtiene un correo por ID.
func (uc *FileUseCase) GetReceived(id int64) (*dto.ReceivedFileResponse, error) {
	f, err := uc.received.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return entityToReceivedFileResponse(f), nil
}

// ListReceived lista correos, filtrables por empresa y/o cliente.
func (uc *FileUseCase) ListReceived(companyID, basicUserID *int64) ([]dto.ReceivedFileResponse, error) {
	list, err := uc.received.List(companyID, basicUserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceivedFileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *entityToReceivedFileResponse(f))
	}
	return items, nil
}

// UpdateReceived cambia estado, resumen o banderas de un correo. Marcar
// is_sent sella también send_at.
func (uc *FileUseCase) UpdateReceived(id int64, in dto.UpdateReceivedFileRequest) (*dto.ReceivedFileResponse, error) {
	f, err := uc.received.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if in.Status != nil {
		f.Status = in.Status
	}
	if in.Resume != nil {
		f.Resume = in.Resume
	}
	if in.IsSent != nil {
		f.IsSent = *in.IsSent
		if f.IsSent && f.SendAt == nil {
			now := time.Now()
			f.SendAt = &now
		}
	}
	if in.IsArchived != nil {
		f.IsArchived = *in.IsArchived
	}

	if err := uc.received.Update(f); err != nil {
		return nil, err
	}
	return entityToReceivedFileResponse(f), nil
}

// ── Contratos ────────────────────────────────────────────────────────────────

// CreateContract registra un contrato de domiciliación.
func (uc *FileUseCase) CreateContract(in dto.CreateContractFileRequest) (*dto.ContractFileResponse, error) {
	if in.CompanyID == 0 || in.BasicUserID == 0 {
		return nil, fmt.Errorf("%w: id_company e id_basic_user son obligatorios", domain.ErrInvalidInput)
	}
	f := &entity.ContractFile{
		CompanyID:           in.CompanyID,
		BasicUserID:         in.BasicUserID,
		ContractFileURL:     in.ContractFileURL,
		CompensatoryFileURL: in.CompensatoryFileURL,
		Tag:                 in.Tag,
		CreatedAt:           time.Now(),
	}
	if err := uc.contracts.Create(f); err != nil {
		return nil, err
	}
	return entityToContractFileResponse(f), nil
}

// GetContract obtiene un contrato por ID.
func (uc *FileUseCase) GetContract(id int64) (*dto.ContractFileResponse, error) {
	f, err := uc.contracts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return entityToContractFileResponse(f), nil
}

// ListContracts lista contratos filtrables por empresa y/o cliente.
func (uc *FileUseCase) ListContracts(companyID, basicUserID *int64) ([]dto.ContractFileResponse, error) {
	list, err := uc.contracts.List(companyID, basicUserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractFileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *entityToContractFileResponse(f))
	}
	return items, nil
}

// UpdateContract avanza el flujo de firma. Con ambas firmas la fecha de
// completado se sella una sola vez.
func (uc *FileUseCase) UpdateContract(id int64, in dto.UpdateContractFileRequest) (*dto.ContractFileResponse, error) {
	f, err := uc.contracts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if in.IsSignedByUser != nil {
		f.IsSignedByUser = *in.IsSignedByUser
		if f.IsSignedByUser && f.YousignSignatureDate == nil {
			now := time.Now()
			f.YousignSignatureDate = &now
		}
	}
	if in.IsSignedByAdmin != nil {
		f.IsSignedByAdmin = *in.IsSignedByAdmin
	}
	if in.SignedFileURL != nil {
		f.SignedFileURL = in.SignedFileURL
	}
	if in.YousignProcedureID != nil {
		f.YousignProcedureID = in.YousignProcedureID
	}
	if in.SignatureStatus != nil {
		f.SignatureStatus = in.SignatureStatus
	}
	if f.IsSignedByUser && f.IsSignedByAdmin && f.YousignCompletionDate == nil {
		now := time.Now()
		f.YousignCompletionDate = &now
	}

	if err := uc.contracts.Update(f); err != nil {
		return nil, err
	}
	return entityToContractFileResponse(f), nil
}

// ── Justificantes ────────────────────────────────────────────────────────────

// CreateSupporting registra un justificante aportado por un cliente.
func (uc *FileUseCase) CreateSupporting(in dto.CreateSupportingFileRequest) (*dto.SupportingFileResponse, error) {
	if in.BasicUserID == 0 || in.FileTypeID == 0 {
		return nil, fmt.Errorf("%w: id_basic_user e id_file_type son obligatorios", domain.ErrInvalidInput)
	}
	f := &entity.SupportingFile{
		BasicUserID: in.BasicUserID,
		FileTypeID:  in.FileTypeID,
		Note:        in.Note,
		FileURL:     in.FileURL,
		CreatedAt:   time.Now(),
	}
	if err := uc.supporting.Create(f); err != nil {
		return nil, err
	}
	return entityToSupportingFileResponse(f), nil
}

// ListSupporting lista justificantes, filtrables por cliente.
func (uc *FileUseCase) ListSupporting(basicUserID *int64) ([]dto.SupportingFileResponse, error) {
	list, err := uc.supporting.List(basicUserID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupportingFileResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *entityToSupportingFileResponse(f))
	}
	return items, nil
}

// UpdateSupporting valida o anota un justificante. La primera validación
// sella validate_at.
func (uc *FileUseCase) UpdateSupporting(id int64, in dto.UpdateSupportingFileRequest) (*dto.SupportingFileResponse, error) {
	f, err := uc.supporting.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}

	if in.Note != nil {
		f.Note = in.Note
	}
	if in.IsValidate != nil {
		f.IsValidate = *in.IsValidate
		if f.IsValidate && f.ValidateAt == nil {
			now := time.Now()
			f.ValidateAt = &now
		}
	}

	if err := uc.supporting.Update(f); err != nil {
		return nil, err
	}
	return entityToSupportingFileResponse(f), nil
}

// DeleteSupporting elimina un justificante.
func (uc *FileUseCase) DeleteSupporting(id int64) error {
	f, err := uc.supporting.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.supporting.Delete(id)
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CreateCategory alta de una categoría de documentos.
func (uc *FileUseCase) CreateCategory(in dto.CategoryFileRequest) (*dto.CategoryFileResponse, error) {
	if in.CategoryName == "" {
		return nil, fmt.Errorf("%w: category_name es obligatorio", domain.ErrInvalidInput)
	}
	c := &entity.CategoryFile{
		CategoryName:        in.CategoryName,
		CategoryDescription: in.CategoryDescription,
		LabelID:             in.LabelID,
		LabelDescription:    in.LabelDescription,
	}
	if err := uc.categories.Create(c); err != nil {
		return nil, err
	}
	return entityToCategoryFileResponse(c), nil
}

// ListCategories lista todas las categorías.
func (uc *FileUseCase) ListCategories() ([]dto.CategoryFileResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryFileResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCategoryFileResponse(c))
	}
	return items, nil
}

// UpdateCategory actualiza una categoría.
func (uc *FileUseCase) UpdateCategory(id int64, in dto.CategoryFileRequest) (*dto.CategoryFileResponse, error) {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.CategoryName != "" {
		c.CategoryName = in.CategoryName
	}
	if in.CategoryDescription != nil {
		c.CategoryDescription = in.CategoryDescription
	}
	if in.LabelID != nil {
		c.LabelID = in.LabelID
	}
	if in.LabelDescription != nil {
		c.LabelDescription = in.LabelDescription
	}

	if err := uc.categories.Update(c); err != nil {
		return nil, err
	}
	return entityToCategoryFileResponse(c), nil
}

// DeleteCategory elimina una categoría.
func (uc *FileUseCase) DeleteCategory(id int64) error {
	c, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.categories.Delete(id)
}

// ── Tipos de documento ───────────────────────────────────────────────────────

// CreateFileType alta de un tipo de documento de un tenant.
func (uc *FileUseCase) CreateFileType(in dto.FileTypeRequest) (*dto.FileTypeResponse, error) {
	if in.Label == "" || in.CompanyID == 0 {
		return nil, fmt.Errorf("%w: label e id_company son obligatorios", domain.ErrInvalidInput)
	}
	t := &entity.DomiciliationFileType{
		CompanyID:      in.CompanyID,
		CategoryFileID: in.CategoryFileID,
		Label:          in.Label,
		Description:    in.Description,
	}
	if err := uc.fileTypes.Create(t); err != nil {
		return nil, err
	}
	return entityToFileTypeResponse(t), nil
}

// ListFileTypes lista tipos de documento, filtrables por tenant. Los
// archivados solo salen si includeArchived.
func (uc *FileUseCase) ListFileTypes(companyID *int64, includeArchived bool) ([]dto.FileTypeResponse, error) {
	list, err := uc.fileTypes.List(companyID, includeArchived)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FileTypeResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *entityToFileTypeResponse(t))
	}
	return items, nil
}

// UpdateFileType actualiza o archiva un tipo de documento. No hay borrado
// físico: los justificantes existentes referencian el tipo.
func (uc *FileUseCase) UpdateFileType(id int64, in dto.FileTypeRequest) (*dto.FileTypeResponse, error) {
	t, err := uc.fileTypes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}

	if in.Label != "" {
		t.Label = in.Label
	}
	if in.Description != nil {
		t.Description = in.Description
	}
	if in.CategoryFileID != nil {
		t.CategoryFileID = in.CategoryFileID
	}
	if in.IsArchived != nil {
		t.IsArchived = *in.IsArchived
	}

	if err := uc.fileTypes.Update(t); err != nil {
		return nil, err
	}
	return entityToFileTypeResponse(t), nil
}

// ── Mapeos ───────────────────────────────────────────────────────────────────

func entityToReceivedFileResponse(f *entity.ReceivedFile) *dto.ReceivedFileResponse {
	if f == nil {
		return nil
	}
	return &dto.ReceivedFileResponse{
		ID:               f.ID,
		CompanyID:        f.CompanyID,
		BasicUserID:      f.BasicUserID,
		ReceivedFromName: f.ReceivedFromName,
		RecipientName:    f.RecipientName,
		RecipientEmail:   f.RecipientEmail,
		CourrielObject:   f.CourrielObject,
		Resume:           f.Resume,
		Status:           f.Status,
		FileURL:          f.FileURL,
		SendAt:           f.SendAt,
		UploadedAt:       f.UploadedAt,
		IsSent:           f.IsSent,
		IsArchived:       f.IsArchived,
	}
}

func entityToContractFileResponse(f *entity.ContractFile) *dto.ContractFileResponse {
	if f == nil {
		return nil
	}
	return &dto.ContractFileResponse{
		ID:                  f.ID,
		CompanyID:           f.CompanyID,
		BasicUserID:         f.BasicUserID,
		ContractFileURL:     f.ContractFileURL,
		CompensatoryFileURL: f.CompensatoryFileURL,
		SignedFileURL:       f.SignedFileURL,
		Tag:                 f.Tag,
		IsSignedByUser:      f.IsSignedByUser,
		IsSignedByAdmin:     f.IsSignedByAdmin,
		SignatureStatus:     f.SignatureStatus,
		YousignProcedureID:  f.YousignProcedureID,
		CreatedAt:           f.CreatedAt,
		SignatureDate:       f.YousignSignatureDate,
		CompletionDate:      f.YousignCompletionDate,
	}
}

func entityToSupportingFileResponse(f *entity.SupportingFile) *dto.SupportingFileResponse {
	if f == nil {
		return nil
	}
	return &dto.SupportingFileResponse{
		ID:          f.ID,
		BasicUserID: f.BasicUserID,
		FileTypeID:  f.FileTypeID,
		Note:        f.Note,
		FileURL:     f.FileURL,
		IsValidate:  f.IsValidate,
		ValidateAt:  f.ValidateAt,
		CreatedAt:   f.CreatedAt,
	}
}

func entityToCategoryFileResponse(c *entity.CategoryFile) *dto.CategoryFileResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryFileResponse{
		ID:                  c.ID,
		CategoryName:        c.CategoryName,
		CategoryDescription: c.CategoryDescription,
		LabelID:             c.LabelID,
		LabelDescription:    c.LabelDescription,
	}
}

func entityToFileTypeResponse(t *entity.DomiciliationFileType) *dto.FileTypeResponse {
	if t == nil {
		return nil
	}
	return &dto.FileTypeResponse{
		ID:             t.ID,
		Label:          t.Label,
		Description:    t.Description,
		CompanyID:      t.CompanyID,
		CategoryFileID: t.CategoryFileID,
		IsArchived:     t.IsArchived,
	}
}
