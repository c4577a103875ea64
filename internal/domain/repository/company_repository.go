package repository

import "github.com/domicilia/backoffice-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para Company.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id int64) (*entity.Company, error)
	GetBySlug(slug string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id int64) error
}

// ColorThemeRepository puerto de persistencia para ColorTheme.
type ColorThemeRepository interface {
	List() ([]*entity.ColorTheme, error)
	GetByID(id int64) (*entity.ColorTheme, error)
	GetByCompany(companyID int64) (*entity.ColorTheme, error)
	Create(theme *entity.ColorTheme) error
	Update(theme *entity.ColorTheme) error
	Delete(id int64) error
}
