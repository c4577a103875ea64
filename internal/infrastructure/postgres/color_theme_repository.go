package postgres

import (
	"context"
	"fmt"

	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

var _ repository.ColorThemeRepository = (*ColorThemeRepo)(nil)

// ColorThemeRepo implementación de ColorThemeRepository (usable con pool o tx).
type ColorThemeRepo struct {
	q Querier
}

// NewColorThemeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewColorThemeRepository(q Querier) *ColorThemeRepo {
	return &ColorThemeRepo{q: q}
}

const colorThemeColumns = `
	id, name, category_theme, background_color, primary_color, primary_color_hover,
	foreground_color, standard_color, id_company, created_at`

// List devuelve todos los temas (catálogo y temas por empresa).
func (r *ColorThemeRepo) List() ([]*entity.ColorTheme, error) {
	query := `SELECT ` + colorThemeColumns + ` FROM color_theme ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list color themes: %w", err)
	}
	defer rows.Close()

	var list []*entity.ColorTheme
	for rows.Next() {
		var t entity.ColorTheme
		if err := rows.Scan(
			&t.ID, &t.Name, &t.CategoryTheme, &t.BackgroundColor, &t.PrimaryColor,
			&t.PrimaryColorHover, &t.ForegroundColor, &t.StandardColor, &t.CompanyID, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan color theme: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// GetByID obtiene un tema por ID.
func (r *ColorThemeRepo) GetByID(id int64) (*entity.ColorTheme, error) {
	query := `SELECT ` + colorThemeColumns + ` FROM color_theme WHERE id = $1`
	var t entity.ColorTheme
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.CategoryTheme, &t.BackgroundColor, &t.PrimaryColor,
		&t.PrimaryColorHover, &t.ForegroundColor, &t.StandardColor, &t.CompanyID, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color theme: %w", err)
	}
	return &t, nil
}

// GetByCompany obtiene el tema propio de una empresa (a lo sumo uno).
func (r *ColorThemeRepo) GetByCompany(companyID int64) (*entity.ColorTheme, error) {
	query := `SELECT ` + colorThemeColumns + ` FROM color_theme WHERE id_company = $1`
	var t entity.ColorTheme
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(
		&t.ID, &t.Name, &t.CategoryTheme, &t.BackgroundColor, &t.PrimaryColor,
		&t.PrimaryColorHover, &t.ForegroundColor, &t.StandardColor, &t.CompanyID, &t.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color theme by company: %w", err)
	}
	return &t, nil
}

// Create persiste un tema y escribe el ID generado.
func (r *ColorThemeRepo) Create(theme *entity.ColorTheme) error {
	query := `
		INSERT INTO color_theme (name, category_theme, background_color, primary_color,
			primary_color_hover, foreground_color, standard_color, id_company, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		theme.Name, theme.CategoryTheme, theme.BackgroundColor, theme.PrimaryColor,
		theme.PrimaryColorHover, theme.ForegroundColor, theme.StandardColor,
		theme.CompanyID, theme.CreatedAt,
	).Scan(&theme.ID)
	if err != nil {
		return fmt.Errorf("insert color theme: %w", err)
	}
	return nil
}

// Update actualiza un tema existente.
func (r *ColorThemeRepo) Update(theme *entity.ColorTheme) error {
	query := `
		UPDATE color_theme SET name = $2, category_theme = $3, background_color = $4,
			primary_color = $5, primary_color_hover = $6, foreground_color = $7,
			standard_color = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		theme.ID, theme.Name, theme.CategoryTheme, theme.BackgroundColor,
		theme.PrimaryColor, theme.PrimaryColorHover, theme.ForegroundColor, theme.StandardColor,
	)
	if err != nil {
		return fmt.Errorf("update color theme: %w", err)
	}
	return nil
}

// Delete elimina un tema por ID.
func (r *ColorThemeRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM color_theme WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete color theme: %w", err)
	}
	return nil
}
