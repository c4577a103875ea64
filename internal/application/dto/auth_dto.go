package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse proyección normalizada del usuario autenticado,
// independiente de la tabla de origen.
type ProfileResponse struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	Name              string  `json:"name"`
	FirstName         string  `json:"firstName"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	ProfileType       string  `json:"profileType"` // adminUser | basicUser
	CompanyID         int64   `json:"companyId"`
	CompanySlug       string  `json:"companySlug"`
}

// LoginResponse salida del login: token opaco + perfil.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// PasswordHashResponse salida del endpoint administrativo de consulta de hash.
// Expone el hash deliberadamente; el endpoint queda detrás del guard.
type PasswordHashResponse struct {
	ID                int64   `json:"id"`
	Email             string  `json:"email"`
	PasswordHash      string  `json:"password_hash"`
	FirstName         string  `json:"firstName"`
	Name              string  `json:"name"`
	ProfilePictureURL *string `json:"profilePictureUrl"`
	ProfileType       string  `json:"profileType"`
	CompanyID         int64   `json:"companyId"`
	CompanySlug       string  `json:"companySlug"`
}

// RegisterRequest alta de un usuario admin o basic.
type RegisterRequest struct {
	Name                   string  `json:"name"`
	FirstName              string  `json:"first_name"`
	Email                  string  `json:"email"`
	Password               string  `json:"password"`
	TypeOfUser             string  `json:"typeOfUser"` // admin_user | basic_user
	TagOfAdmin             string  `json:"tagOfAdmin"` // requerido si admin_user
	CompanyID              int64   `json:"id_company"`
	Phone                  *string `json:"phone"`
	AllowSendingEmail      bool    `json:"allowSendingEmail"`
	SendCredentialsViaMail bool    `json:"sendCredentialsViaMail"`
}
