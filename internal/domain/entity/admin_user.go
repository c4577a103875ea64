package entity

import "time"

// AdminUser usuario administrador de una Company (back-office).
// Tabla propia con su espacio de IDs, separada de basic_user.
// No se elimina físicamente: el ciclo de vida pasa por IsBanned.
type AdminUser struct {
	ID                int64
	CompanyID         int64
	SubRoleID         int64
	Name              string
	FirstName         string
	Email             string
	Phone             *string
	ProfilePictureURL *string
	PasswordHash      string // bcrypt, nunca en claro después de persistir
	IsBanned          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
