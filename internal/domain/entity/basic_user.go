package entity

import "time"

// BasicUser cliente final de una Company (domiciliado). A diferencia de
// AdminUser sí admite borrado físico.
type BasicUser struct {
	ID                int64
	CompanyID         int64
	Name              string
	FirstName         string
	Email             string
	Phone             *string
	ProfilePictureURL *string
	PasswordHash      string
	AddressLine       *string
	City              *string
	State             *string
	PostalCode        *string
	Country           *string
	IsBanned          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
