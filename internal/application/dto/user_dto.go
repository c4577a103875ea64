package dto

import "time"

// BasicUserResponse salida de un cliente final (sin hash).
type BasicUserResponse struct {
	ID                int64     `json:"id"`
	CompanyID         int64     `json:"idCompany"`
	Name              string    `json:"name"`
	FirstName         string    `json:"firstName"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	AddressLine       *string   `json:"addressLine"`
	City              *string   `json:"city"`
	State             *string   `json:"state"`
	PostalCode        *string   `json:"postalCode"`
	Country           *string   `json:"country"`
	IsBanned          bool      `json:"isBanned"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UpdateBasicUserRequest actualización parcial de un cliente.
type UpdateBasicUserRequest struct {
	Name              *string `json:"name"`
	FirstName         *string `json:"first_name"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	AddressLine       *string `json:"address_line"`
	City              *string `json:"city"`
	State             *string `json:"state"`
	PostalCode        *string `json:"postal_code"`
	Country           *string `json:"country"`
	IsBanned          *bool   `json:"is_banned"`
	Password          *string `json:"password"` // se hashea en el caso de uso
}

// AdminUserResponse salida de un administrador (sin hash).
type AdminUserResponse struct {
	ID                int64     `json:"id"`
	CompanyID         int64     `json:"idCompany"`
	SubRoleID         int64     `json:"idSubRole"`
	Name              string    `json:"name"`
	FirstName         string    `json:"firstName"`
	Email             string    `json:"email"`
	Phone             *string   `json:"phone"`
	ProfilePictureURL *string   `json:"profilePictureUrl"`
	IsBanned          bool      `json:"isBanned"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UpdateAdminUserRequest actualización parcial de un administrador.
// No hay borrado físico: la baja es is_banned.
type UpdateAdminUserRequest struct {
	Name              *string `json:"name"`
	FirstName         *string `json:"first_name"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	IsBanned          *bool   `json:"is_banned"`
	Password          *string `json:"password"`
}
