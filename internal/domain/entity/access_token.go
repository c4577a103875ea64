package entity

import "time"

// AccessToken credencial opaca ligada a exactamente una identidad (de
// cualquiera de las dos tablas). No expira sola: vive hasta que un logout
// borra la fila.
type AccessToken struct {
	ID         int64
	UserType   string // admin_user | basic_user
	UserID     int64
	Name       string // etiqueta del token, ej. "api-token"
	TokenHash  string // SHA-256 del secreto; el claro nunca se guarda
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
