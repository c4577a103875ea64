package entity

// Etiquetas de procedencia de una identidad (qué tabla la respalda).
const (
	ProfileTypeAdmin = "adminUser"
	ProfileTypeBasic = "basicUser"
)

// Valores de UserType tal como se persisten en personal_access_token.
const (
	UserTypeAdmin = "admin_user"
	UserTypeBasic = "basic_user"
)

// Identity es la proyección normalizada de un usuario, independiente de si
// proviene de admin_user o de basic_user. El resolver y el guard operan solo
// sobre esta forma; los campos específicos de cada tabla no salen de aquí.
type Identity struct {
	ID                int64
	UserType          string // admin_user | basic_user
	ProfileType       string // adminUser | basicUser
	Email             string
	Name              string
	FirstName         string
	ProfilePictureURL *string
	PasswordHash      string
	CompanyID         int64
	CompanySlug       string
}
