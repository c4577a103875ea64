package auth

import (
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// Resolver localiza una identidad por email a través de las dos tablas de
// usuarios y la proyecta a la forma normalizada entity.Identity. Solo lectura.
type Resolver struct {
	adminRepo   repository.AdminUserRepository
	basicRepo   repository.BasicUserRepository
	companyRepo repository.CompanyRepository
}

// NewResolver construye el resolver con los puertos de ambas tablas.
func NewResolver(adminRepo repository.AdminUserRepository, basicRepo repository.BasicUserRepository, companyRepo repository.CompanyRepository) *Resolver {
	return &Resolver{adminRepo: adminRepo, basicRepo: basicRepo, companyRepo: companyRepo}
}

// Resolve busca el email primero en admin_user y después en basic_user.
// El email es único en la unión de ambas tablas, así que a lo sumo una de las
// dos consultas devuelve fila; el orden admin-primero se mantiene como
// política de desempate. Devuelve (nil, nil) si no existe. Match exacto,
// sin normalizar mayúsculas/minúsculas.
func (r *Resolver) Resolve(email string) (*entity.Identity, error) {
	admin, err := r.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin != nil {
		ident := &entity.Identity{
			ID:                admin.ID,
			UserType:          entity.UserTypeAdmin,
			ProfileType:       entity.ProfileTypeAdmin,
			Email:             admin.Email,
			Name:              admin.Name,
			FirstName:         admin.FirstName,
			ProfilePictureURL: admin.ProfilePictureURL,
			PasswordHash:      admin.PasswordHash,
			CompanyID:         admin.CompanyID,
		}
		return r.withCompanySlug(ident)
	}

	basic, err := r.basicRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if basic != nil {
		ident := &entity.Identity{
			ID:                basic.ID,
			UserType:          entity.UserTypeBasic,
			ProfileType:       entity.ProfileTypeBasic,
			Email:             basic.Email,
			Name:              basic.Name,
			FirstName:         basic.FirstName,
			ProfilePictureURL: basic.ProfilePictureURL,
			PasswordHash:      basic.PasswordHash,
			CompanyID:         basic.CompanyID,
		}
		return r.withCompanySlug(ident)
	}

	return nil, nil
}

func (r *Resolver) withCompanySlug(ident *entity.Identity) (*entity.Identity, error) {
	company, err := r.companyRepo.GetByID(ident.CompanyID)
	if err != nil {
		return nil, err
	}
	if company != nil {
		ident.CompanySlug = company.Slug
	}
	return ident, nil
}
