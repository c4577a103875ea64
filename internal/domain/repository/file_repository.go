package repository

import "github.com/domicilia/backoffice-api/internal/domain/entity"

// ReceivedFileRepository correo entrante escaneado.
type ReceivedFileRepository interface {
	Create(f *entity.ReceivedFile) error
	GetByID(id int64) (*entity.ReceivedFile, error)
	List(companyID, basicUserID *int64) ([]*entity.ReceivedFile, error)
	Update(f *entity.ReceivedFile) error
}

// ContractFileRepository contratos de domiciliación.
type ContractFileRepository interface {
	Create(f *entity.ContractFile) error
	GetByID(id int64) (*entity.ContractFile, error)
	List(companyID, basicUserID *int64) ([]*entity.ContractFile, error)
	Update(f *entity.ContractFile) error
}

// SupportingFileRepository justificantes aportados por los usuarios.
type SupportingFileRepository interface {
	Create(f *entity.SupportingFile) error
	GetByID(id int64) (*entity.SupportingFile, error)
	List(basicUserID *int64) ([]*entity.SupportingFile, error)
	Update(f *entity.SupportingFile) error
	Delete(id int64) error
}

// CategoryFileRepository categorías de documentos.
type CategoryFileRepository interface {
	Create(c *entity.CategoryFile) error
	GetByID(id int64) (*entity.CategoryFile, error)
	List() ([]*entity.CategoryFile, error)
	Update(c *entity.CategoryFile) error
	Delete(id int64) error
}

// FileTypeRepository tipos de documento de domiciliación por Company.
type FileTypeRepository interface {
	Create(t *entity.DomiciliationFileType) error
	GetByID(id int64) (*entity.DomiciliationFileType, error)
	List(companyID *int64, includeArchived bool) ([]*entity.DomiciliationFileType, error)
	Update(t *entity.DomiciliationFileType) error
}
