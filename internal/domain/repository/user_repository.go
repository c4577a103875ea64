package repository

import "github.com/domicilia/backoffice-api/internal/domain/entity"

// AdminUserRepository puerto de persistencia para AdminUser (DIP).
// No expone Delete: los administradores se desactivan con is_banned.
type AdminUserRepository interface {
	Create(user *entity.AdminUser) error
	GetByID(id int64) (*entity.AdminUser, error)
	GetByEmail(email string) (*entity.AdminUser, error)
	Update(user *entity.AdminUser) error
	List(companyID int64, limit, offset int) ([]*entity.AdminUser, error)
}

// BasicUserRepository puerto de persistencia para BasicUser.
type BasicUserRepository interface {
	Create(user *entity.BasicUser) error
	GetByID(id int64) (*entity.BasicUser, error)
	GetByEmail(email string) (*entity.BasicUser, error)
	Update(user *entity.BasicUser) error
	List(companyID int64, limit, offset int) ([]*entity.BasicUser, error)
	Delete(id int64) error
}

// SubRoleRepository catálogo de sub-roles de administradores.
type SubRoleRepository interface {
	GetByLabel(label string) (*entity.SubRole, error)
	GetByID(id int64) (*entity.SubRole, error)
}
