package usecase

import (
	"context"

	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// ThemeTxRunner ejecuta una función con los repositorios de temas y empresas
// atados a una misma transacción. El upsert de tema toca dos tablas
// (color_theme y company.color_theme_id) y debe ser atómico.
type ThemeTxRunner interface {
	RunTheme(ctx context.Context, fn func(
		themeRepo repository.ColorThemeRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
