package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// ThemeUseCase gestiona la paleta de colores de la web pública de cada tenant.
// Una Company tiene a lo sumo un tema propio; el catálogo (temas sin empresa)
// es de solo lectura para los tenants.
type ThemeUseCase struct {
	themes    repository.ColorThemeRepository
	companies repository.CompanyRepository
	tx        ThemeTxRunner
}

// NewThemeUseCase construye el caso de uso de temas.
func NewThemeUseCase(themes repository.ColorThemeRepository, companies repository.CompanyRepository, tx ThemeTxRunner) *ThemeUseCase {
	return &ThemeUseCase{themes: themes, companies: companies, tx: tx}
}

// List devuelve todos los temas (catálogo y temas de empresa).
func (uc *ThemeUseCase) List() ([]dto.ThemeResponse, error) {
	list, err := uc.themes.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ThemeResponse, 0, len(list))
	for _, th := range list {
		items = append(items, *entityToThemeResponse(th))
	}
	return items, nil
}

// GetByID obtiene un tema por ID.
func (uc *ThemeUseCase) GetByID(id int64) (*dto.ThemeResponse, error) {
	th, err := uc.themes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if th == nil {
		return nil, domain.ErrNotFound
	}
	return entityToThemeResponse(th), nil
}

// GetByCompany devuelve el tema propio de una empresa, si lo tiene.
func (uc *ThemeUseCase) GetByCompany(companyID int64) (*dto.ThemeResponse, error) {
	th, err := uc.themes.GetByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if th == nil {
		return nil, domain.ErrNotFound
	}
	return entityToThemeResponse(th), nil
}

// Upsert crea o reemplaza el tema de una empresa y apunta
// company.color_theme_id al tema resultante, todo en una transacción:
// un fallo a mitad no puede dejar a la empresa apuntando a un tema que no
// refleja la petición.
func (uc *ThemeUseCase) Upsert(ctx context.Context, in dto.ThemeUpsertRequest) (*dto.ThemeResponse, error) {
	if in.CompanyID == nil {
		return nil, fmt.Errorf("%w: id_company es obligatorio", domain.ErrInvalidInput)
	}
	if in.Name == "" || in.BackgroundColor == "" || in.PrimaryColor == "" {
		return nil, fmt.Errorf("%w: name, background_color y primary_color son obligatorios", domain.ErrInvalidInput)
	}

	var result *entity.ColorTheme
	err := uc.tx.RunTheme(ctx, func(themeRepo repository.ColorThemeRepository, companyRepo repository.CompanyRepository) error {
		company, err := companyRepo.GetByID(*in.CompanyID)
		if err != nil {
			return err
		}
		if company == nil {
			return domain.ErrNotFound
		}

		th, err := themeRepo.GetByCompany(*in.CompanyID)
		if err != nil {
			return err
		}
		if th == nil {
			th = &entity.ColorTheme{CompanyID: in.CompanyID, CreatedAt: time.Now()}
		}
		th.Name = in.Name
		th.CategoryTheme = in.CategoryTheme
		th.BackgroundColor = in.BackgroundColor
		th.PrimaryColor = in.PrimaryColor
		th.PrimaryColorHover = in.PrimaryColorHover
		th.ForegroundColor = in.ForegroundColor
		th.StandardColor = in.StandardColor

		if th.ID == 0 {
			if err := themeRepo.Create(th); err != nil {
				return err
			}
		} else if err := themeRepo.Update(th); err != nil {
			return err
		}

		company.ColorThemeID = &th.ID
		if err := companyRepo.Update(company); err != nil {
			return err
		}
		result = th
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entityToThemeResponse(result), nil
}

// Delete elimina un tema. Solo temas de empresa; el catálogo no se borra.
func (uc *ThemeUseCase) Delete(id int64) error {
	th, err := uc.themes.GetByID(id)
	if err != nil {
		return err
	}
	if th == nil {
		return domain.ErrNotFound
	}
	if th.CompanyID == nil {
		return fmt.Errorf("%w: los temas de catálogo no se eliminan", domain.ErrForbidden)
	}
	return uc.themes.Delete(id)
}

func entityToThemeResponse(th *entity.ColorTheme) *dto.ThemeResponse {
	if th == nil {
		return nil
	}
	return &dto.ThemeResponse{
		ID:                th.ID,
		Name:              th.Name,
		BackgroundColor:   th.BackgroundColor,
		ForegroundColor:   th.ForegroundColor,
		PrimaryColor:      th.PrimaryColor,
		PrimaryColorHover: th.PrimaryColorHover,
		StandardColor:     th.StandardColor,
		Category:          th.CategoryTheme,
		CompanyID:         th.CompanyID,
		CreatedAt:         th.CreatedAt,
	}
}
