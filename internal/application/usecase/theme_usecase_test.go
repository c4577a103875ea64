package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// fakeThemeTx ejecuta el callback directamente sobre los fakes; la atomicidad
// real se prueba contra Postgres, aquí solo interesa la regla de negocio.
type fakeThemeTx struct {
	themes    repository.ColorThemeRepository
	companies repository.CompanyRepository
}

func (f *fakeThemeTx) RunTheme(ctx context.Context, fn func(repository.ColorThemeRepository, repository.CompanyRepository) error) error {
	return fn(f.themes, f.companies)
}

func newThemeFixture() (*usecase.ThemeUseCase, *fakeThemeRepo, *fakeCompanyRepo) {
	themes := &fakeThemeRepo{themes: map[int64]*entity.ColorTheme{}}
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		10: {ID: 10, Name: "Acme", Slug: "acme"},
	}, nextID: 10}
	tx := &fakeThemeTx{themes: themes, companies: companies}
	return usecase.NewThemeUseCase(themes, companies, tx), themes, companies
}

func upsertReq(companyID int64) dto.ThemeUpsertRequest {
	return dto.ThemeUpsertRequest{
		Name:              "Océan",
		BackgroundColor:   "#ffffff",
		PrimaryColor:      "#0055ff",
		PrimaryColorHover: "#0044cc",
		ForegroundColor:   "#111111",
		StandardColor:     "#333333",
		CompanyID:         &companyID,
	}
}

func TestThemeUpsert_CreaYEnlazaLaEmpresa(t *testing.T) {
	uc, themes, companies := newThemeFixture()

	out, err := uc.Upsert(context.Background(), upsertReq(10))
	require.NoError(t, err)

	assert.Equal(t, "Océan", out.Name)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, int64(10), *out.CompanyID)

	company := companies.companies[10]
	require.NotNil(t, company.ColorThemeID)
	assert.Equal(t, out.ID, *company.ColorThemeID, "la empresa apunta al tema recién creado")
	assert.Len(t, themes.themes, 1)
}

func TestThemeUpsert_SegundaLlamadaActualizaSinDuplicar(t *testing.T) {
	uc, themes, _ := newThemeFixture()

	first, err := uc.Upsert(context.Background(), upsertReq(10))
	require.NoError(t, err)

	req := upsertReq(10)
	req.Name = "Forêt"
	second, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "máximo un tema por empresa: se actualiza, no se duplica")
	assert.Equal(t, "Forêt", second.Name)
	assert.Len(t, themes.themes, 1)
}

func TestThemeUpsert_EmpresaInexistente(t *testing.T) {
	uc, themes, _ := newThemeFixture()

	_, err := uc.Upsert(context.Background(), upsertReq(99))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, themes.themes)
}

func TestThemeUpsert_SinEmpresa(t *testing.T) {
	uc, _, _ := newThemeFixture()

	req := upsertReq(10)
	req.CompanyID = nil
	_, err := uc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestThemeDelete_CatalogoProtegido(t *testing.T) {
	uc, themes, _ := newThemeFixture()
	themes.themes[1] = &entity.ColorTheme{ID: 1, Name: "Catalogue"} // sin empresa
	themes.nextID = 1

	err := uc.Delete(1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotEmpty(t, themes.themes)
}

func TestThemeDelete_TemaDeEmpresa(t *testing.T) {
	uc, themes, _ := newThemeFixture()
	companyID := int64(10)
	themes.themes[1] = &entity.ColorTheme{ID: 1, Name: "Océan", CompanyID: &companyID}
	themes.nextID = 1

	require.NoError(t, uc.Delete(1))
	assert.Empty(t, themes.themes)
}
