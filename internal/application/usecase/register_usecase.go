package usecase

import (
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// RegisterUseCase alta de usuarios en cualquiera de las dos tablas.
// El email debe ser único en la UNIÓN de admin_user y basic_user, no solo
// en la tabla de destino.
type RegisterUseCase struct {
	adminRepo repository.AdminUserRepository
	basicRepo repository.BasicUserRepository
	subRoles  repository.SubRoleRepository
}

// NewRegisterUseCase construye el caso de uso de registro.
func NewRegisterUseCase(adminRepo repository.AdminUserRepository, basicRepo repository.BasicUserRepository, subRoles repository.SubRoleRepository) *RegisterUseCase {
	return &RegisterUseCase{adminRepo: adminRepo, basicRepo: basicRepo, subRoles: subRoles}
}

// Register crea el usuario según typeOfUser. Para admin_user el sub-rol se
// resuelve por etiqueta (tagOfAdmin); una etiqueta desconocida rechaza el alta.
func (uc *RegisterUseCase) Register(in dto.RegisterRequest) (*dto.ProfileResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: name, email y password son obligatorios", domain.ErrInvalidInput)
	}

	taken, err := uc.emailTaken(in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	switch in.TypeOfUser {
	case entity.UserTypeAdmin:
		role, err := uc.subRoles.GetByLabel(in.TagOfAdmin)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, fmt.Errorf("%w: sub-rol desconocido %q", domain.ErrInvalidInput, in.TagOfAdmin)
		}
		user := &entity.AdminUser{
			CompanyID:    in.CompanyID,
			SubRoleID:    role.ID,
			Name:         in.Name,
			FirstName:    in.FirstName,
			Email:        in.Email,
			Phone:        in.Phone,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		if err := uc.adminRepo.Create(user); err != nil {
			return nil, err
		}
		return &dto.ProfileResponse{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			FirstName:   user.FirstName,
			ProfileType: entity.ProfileTypeAdmin,
			CompanyID:   user.CompanyID,
		}, nil

	case entity.UserTypeBasic:
		user := &entity.BasicUser{
			CompanyID:    in.CompanyID,
			Name:         in.Name,
			FirstName:    in.FirstName,
			Email:        in.Email,
			Phone:        in.Phone,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}
		if err := uc.basicRepo.Create(user); err != nil {
			return nil, err
		}
		return &dto.ProfileResponse{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			FirstName:   user.FirstName,
			ProfileType: entity.ProfileTypeBasic,
			CompanyID:   user.CompanyID,
		}, nil
	}

	return nil, fmt.Errorf("%w: typeOfUser debe ser %s o %s", domain.ErrInvalidInput, entity.UserTypeAdmin, entity.UserTypeBasic)
}

func (uc *RegisterUseCase) emailTaken(email string) (bool, error) {
	admin, err := uc.adminRepo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if admin != nil {
		return true, nil
	}
	basic, err := uc.basicRepo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return basic != nil, nil
}
