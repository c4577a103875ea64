package entity

import "time"

// ColorTheme paleta de colores de la web pública de una Company.
// Una Company tiene como máximo un tema propio (upsert por id_company).
type ColorTheme struct {
	ID                int64
	Name              string
	CategoryTheme     *string
	BackgroundColor   string
	PrimaryColor      string
	PrimaryColorHover string
	ForegroundColor   string
	StandardColor     string
	CompanyID         *int64 // nil = tema de catálogo, sin empresa
	CreatedAt         time.Time
}
