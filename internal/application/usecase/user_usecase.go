package usecase

import (
	"time"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// UserUseCase gestión de los usuarios de un tenant (clientes y administradores).
// El email nunca se actualiza por esta vía: es la clave de resolución de
// identidad y cambiarla equivaldría a transferir la cuenta.
type UserUseCase struct {
	adminRepo repository.AdminUserRepository
	basicRepo repository.BasicUserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(adminRepo repository.AdminUserRepository, basicRepo repository.BasicUserRepository) *UserUseCase {
	return &UserUseCase{adminRepo: adminRepo, basicRepo: basicRepo}
}

// ── Clientes (basic_user) ────────────────────────────────────────────────────

// GetBasicByID obtiene un cliente por ID.
func (uc *UserUseCase) GetBasicByID(id int64) (*dto.BasicUserResponse, error) {
	user, err := uc.basicRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToBasicUserResponse(user), nil
}

// ListBasic lista los clientes de una empresa con paginación.
func (uc *UserUseCase) ListBasic(companyID int64, limit, offset int) ([]dto.BasicUserResponse, error) {
	list, err := uc.basicRepo.List(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BasicUserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToBasicUserResponse(u))
	}
	return items, nil
}

// UpdateBasic aplica una actualización parcial a un cliente. Si llega un
// password nuevo se rehashea; el claro nunca toca la base.
func (uc *UserUseCase) UpdateBasic(id int64, in dto.UpdateBasicUserRequest) (*dto.BasicUserResponse, error) {
	user, err := uc.basicRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.ProfilePictureURL != nil {
		user.ProfilePictureURL = in.ProfilePictureURL
	}
	if in.AddressLine != nil {
		user.AddressLine = in.AddressLine
	}
	if in.City != nil {
		user.City = in.City
	}
	if in.State != nil {
		user.State = in.State
	}
	if in.PostalCode != nil {
		user.PostalCode = in.PostalCode
	}
	if in.Country != nil {
		user.Country = in.Country
	}
	if in.IsBanned != nil {
		user.IsBanned = *in.IsBanned
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := uc.basicRepo.Update(user); err != nil {
		return nil, err
	}
	return entityToBasicUserResponse(user), nil
}

// DeleteBasic elimina físicamente un cliente. Sus tokens dejan de resolver
// identidad y quedan huérfanos hasta el siguiente intento de uso.
func (uc *UserUseCase) DeleteBasic(id int64) error {
	user, err := uc.basicRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.basicRepo.Delete(id)
}

// ── Administradores (admin_user) ─────────────────────────────────────────────

// GetAdminByID obtiene un administrador por ID.
func (uc *UserUseCase) GetAdminByID(id int64) (*dto.AdminUserResponse, error) {
	user, err := uc.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToAdminUserResponse(user), nil
}

// ListAdmins lista los administradores de una empresa.
func (uc *UserUseCase) ListAdmins(companyID int64, limit, offset int) ([]dto.AdminUserResponse, error) {
	list, err := uc.adminRepo.List(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToAdminUserResponse(u))
	}
	return items, nil
}

// UpdateAdmin aplica una actualización parcial a un administrador. No hay
// borrado físico: la baja es is_banned = true.
func (uc *UserUseCase) UpdateAdmin(id int64, in dto.UpdateAdminUserRequest) (*dto.AdminUserResponse, error) {
	user, err := uc.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.Phone != nil {
		user.Phone = in.Phone
	}
	if in.ProfilePictureURL != nil {
		user.ProfilePictureURL = in.ProfilePictureURL
	}
	if in.IsBanned != nil {
		user.IsBanned = *in.IsBanned
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now()

	if err := uc.adminRepo.Update(user); err != nil {
		return nil, err
	}
	return entityToAdminUserResponse(user), nil
}

func entityToBasicUserResponse(u *entity.BasicUser) *dto.BasicUserResponse {
	if u == nil {
		return nil
	}
	return &dto.BasicUserResponse{
		ID:                u.ID,
		CompanyID:         u.CompanyID,
		Name:              u.Name,
		FirstName:         u.FirstName,
		Email:             u.Email,
		Phone:             u.Phone,
		ProfilePictureURL: u.ProfilePictureURL,
		AddressLine:       u.AddressLine,
		City:              u.City,
		State:             u.State,
		PostalCode:        u.PostalCode,
		Country:           u.Country,
		IsBanned:          u.IsBanned,
		CreatedAt:         u.CreatedAt,
	}
}

func entityToAdminUserResponse(u *entity.AdminUser) *dto.AdminUserResponse {
	if u == nil {
		return nil
	}
	return &dto.AdminUserResponse{
		ID:                u.ID,
		CompanyID:         u.CompanyID,
		SubRoleID:         u.SubRoleID,
		Name:              u.Name,
		FirstName:         u.FirstName,
		Email:             u.Email,
		Phone:             u.Phone,
		ProfilePictureURL: u.ProfilePictureURL,
		IsBanned:          u.IsBanned,
		CreatedAt:         u.CreatedAt,
	}
}
