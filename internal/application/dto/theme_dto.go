package dto

import "time"

// ThemeUpsertRequest crea o actualiza el tema de una empresa (máximo uno por Company).
type ThemeUpsertRequest struct {
	Name              string  `json:"name"`
	BackgroundColor   string  `json:"background_color"`
	PrimaryColor      string  `json:"primary_color"`
	PrimaryColorHover string  `json:"primary_color_hover"`
	ForegroundColor   string  `json:"foreground_color"`
	StandardColor     string  `json:"standard_color"`
	CategoryTheme     *string `json:"category_theme"`
	CompanyID         *int64  `json:"id_company"`
}

// ThemeResponse salida de un tema en camelCase (formato del frontend).
type ThemeResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	BackgroundColor   string    `json:"backgroundColor"`
	ForegroundColor   string    `json:"foregroundColor"`
	PrimaryColor      string    `json:"primaryColor"`
	PrimaryColorHover string    `json:"primaryColorHover"`
	StandardColor     string    `json:"standardColor"`
	Category          *string   `json:"category"`
	CompanyID         *int64    `json:"companyId"`
	CreatedAt         time.Time `json:"createdAt"`
}
