package usecase

import (
	"fmt"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// VirtualOfficeUseCase gestiona la entidad legal domiciliada de cada cliente
// (la sociedad que recibe correo en la dirección del tenant).
type VirtualOfficeUseCase struct {
	offices repository.VirtualOfficeRepository
	basics  repository.BasicUserRepository
}

// NewVirtualOfficeUseCase construye el caso de uso.
func NewVirtualOfficeUseCase(offices repository.VirtualOfficeRepository, basics repository.BasicUserRepository) *VirtualOfficeUseCase {
	return &VirtualOfficeUseCase{offices: offices, basics: basics}
}

// Create registra la entidad legal de un cliente. Un cliente tiene como
// máximo una.
func (uc *VirtualOfficeUseCase) Create(in dto.CreateVirtualOfficeRequest) (*dto.VirtualOfficeResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: virtual_office_name es obligatorio", domain.ErrInvalidInput)
	}
	user, err := uc.basics.GetByID(in.BasicUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	existing, err := uc.offices.GetByBasicUser(in.BasicUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el cliente ya tiene una entidad domiciliada", domain.ErrConflict)
	}

	vo := &entity.VirtualOffice{
		BasicUserID:    in.BasicUserID,
		CategoryFileID: in.CategoryFileID,
		Name:           in.Name,
		LegalForm:      in.LegalForm,
		Siret:          in.Siret,
		Siren:          in.Siren,
		RCS:            in.RCS,
		TVA:            in.TVA,
	}
	if err := uc.offices.Create(vo); err != nil {
		return nil, err
	}
	return entityToVirtualOfficeResponse(vo), nil
}

// GetByID obtiene la entidad legal por ID.
func (uc *VirtualOfficeUseCase) GetByID(id int64) (*dto.VirtualOfficeResponse, error) {
	vo, err := uc.offices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vo == nil {
		return nil, domain.ErrNotFound
	}
	return entityToVirtualOfficeResponse(vo), nil
}

// GetByBasicUser obtiene la entidad legal de un cliente.
func (uc *VirtualOfficeUseCase) GetByBasicUser(basicUserID int64) (*dto.VirtualOfficeResponse, error) {
	vo, err := uc.offices.GetByBasicUser(basicUserID)
	if err != nil {
		return nil, err
	}
	if vo == nil {
		return nil, domain.ErrNotFound
	}
	return entityToVirtualOfficeResponse(vo), nil
}

// List lista entidades legales con paginación.
func (uc *VirtualOfficeUseCase) List(limit, offset int) ([]dto.VirtualOfficeResponse, error) {
	list, err := uc.offices.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VirtualOfficeResponse, 0, len(list))
	for _, vo := range list {
		items = append(items, *entityToVirtualOfficeResponse(vo))
	}
	return items, nil
}

// Update actualiza la entidad legal (datos registrales).
func (uc *VirtualOfficeUseCase) Update(id int64, in dto.CreateVirtualOfficeRequest) (*dto.VirtualOfficeResponse, error) {
	vo, err := uc.offices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vo == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" {
		vo.Name = in.Name
	}
	if in.LegalForm != nil {
		vo.LegalForm = in.LegalForm
	}
	if in.Siret != nil {
		vo.Siret = in.Siret
	}
	if in.Siren != nil {
		vo.Siren = in.Siren
	}
	if in.RCS != nil {
		vo.RCS = in.RCS
	}
	if in.TVA != nil {
		vo.TVA = in.TVA
	}
	if in.CategoryFileID != nil {
		vo.CategoryFileID = in.CategoryFileID
	}

	if err := uc.offices.Update(vo); err != nil {
		return nil, err
	}
	return entityToVirtualOfficeResponse(vo), nil
}

func entityToVirtualOfficeResponse(vo *entity.VirtualOffice) *dto.VirtualOfficeResponse {
	if vo == nil {
		return nil
	}
	return &dto.VirtualOfficeResponse{
		ID:             vo.ID,
		Name:           vo.Name,
		LegalForm:      vo.LegalForm,
		Siret:          vo.Siret,
		Siren:          vo.Siren,
		RCS:            vo.RCS,
		TVA:            vo.TVA,
		CategoryFileID: vo.CategoryFileID,
		BasicUserID:    vo.BasicUserID,
	}
}
