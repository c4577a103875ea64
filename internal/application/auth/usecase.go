package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
	"github.com/domicilia/backoffice-api/pkg/token"
)

// Hash bcrypt de un password imposible, usado para igualar el coste de la
// comparación cuando el email no existe y no filtrar por timing qué falló.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const tokenLabel = "api-token"

// UseCase orquesta login, logout y consulta de perfil sobre las dos tablas
// de usuarios y la tabla de tokens opacos.
type UseCase struct {
	resolver *Resolver
	tokens   repository.AccessTokenRepository
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(resolver *Resolver, tokens repository.AccessTokenRepository) *UseCase {
	return &UseCase{resolver: resolver, tokens: tokens}
}

// HashPassword genera el hash bcrypt que se persiste en lugar del claro.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Login valida credenciales y emite un token opaco nuevo. Cualquier fallo
// (email inexistente o password incorrecto) devuelve el mismo
// ErrInvalidCredentials, sin distinguir la causa.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	ident, err := uc.resolver.Resolve(in.Email)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		// Comparación contra un hash ficticio para que el camino "no existe"
		// cueste lo mismo que el camino "password incorrecto".
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	secret, err := token.NewSecret()
	if err != nil {
		return nil, err
	}
	row := &entity.AccessToken{
		UserType:  ident.UserType,
		UserID:    ident.ID,
		Name:      tokenLabel,
		TokenHash: token.Hash(secret),
		CreatedAt: time.Now(),
	}
	if err := uc.tokens.Create(row); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token.Compose(row.ID, secret),
		User:  toProfile(ident),
	}, nil
}

// Authenticate valida un token opaco en claro y devuelve la identidad fresca
// que lo respalda, junto con la fila del token (para logout). La identidad se
// re-resuelve por email en cada petición: los cambios de perfil hechos tras
// emitir el token se ven inmediatamente.
func (uc *UseCase) Authenticate(plain string) (*entity.Identity, *entity.AccessToken, error) {
	id, secret, err := token.Split(plain)
	if err != nil {
		return nil, nil, domain.ErrUnauthorized
	}

	row, err := uc.tokens.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if row == nil || !token.Matches(row.TokenHash, secret) {
		return nil, nil, domain.ErrUnauthorized
	}

	email, err := uc.emailForToken(row)
	if err != nil {
		return nil, nil, err
	}
	if email == "" {
		return nil, nil, domain.ErrUnauthorized
	}

	ident, err := uc.resolver.Resolve(email)
	if err != nil {
		return nil, nil, err
	}
	if ident == nil {
		return nil, nil, domain.ErrUnauthorized
	}

	// Marca de último uso best-effort; un fallo aquí no tumba la petición.
	_ = uc.tokens.TouchLastUsed(row.ID, time.Now())

	return ident, row, nil
}

// Logout revoca exactamente el token presentado. Otras sesiones de la misma
// identidad siguen vivas.
func (uc *UseCase) Logout(tokenID int64) error {
	return uc.tokens.Delete(tokenID)
}

// Me devuelve el perfil normalizado de la identidad autenticada.
func (uc *UseCase) Me(ident *entity.Identity) dto.ProfileResponse {
	return toProfile(ident)
}

// PasswordHash busca una identidad por email y devuelve su perfil con el
// hash incluido. Devuelve ErrUserNotFound si el email no está en ninguna
// de las dos tablas.
func (uc *UseCase) PasswordHash(email string) (*dto.PasswordHashResponse, error) {
	ident, err := uc.resolver.Resolve(email)
	if err != nil {
		return nil, err
	}
	if ident == nil {
		return nil, domain.ErrUserNotFound
	}
	return &dto.PasswordHashResponse{
		ID:                ident.ID,
		Email:             ident.Email,
		PasswordHash:      ident.PasswordHash,
		FirstName:         ident.FirstName,
		Name:              ident.Name,
		ProfilePictureURL: ident.ProfilePictureURL,
		ProfileType:       ident.ProfileType,
		CompanyID:         ident.CompanyID,
		CompanySlug:       ident.CompanySlug,
	}, nil
}

func (uc *UseCase) emailForToken(row *entity.AccessToken) (string, error) {
	switch row.UserType {
	case entity.UserTypeAdmin:
		u, err := uc.resolver.adminRepo.GetByID(row.UserID)
		if err != nil || u == nil {
			return "", err
		}
		return u.Email, nil
	case entity.UserTypeBasic:
		u, err := uc.resolver.basicRepo.GetByID(row.UserID)
		if err != nil || u == nil {
			return "", err
		}
		return u.Email, nil
	}
	return "", nil
}

func toProfile(ident *entity.Identity) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:                ident.ID,
		Email:             ident.Email,
		Name:              ident.Name,
		FirstName:         ident.FirstName,
		ProfilePictureURL: ident.ProfilePictureURL,
		ProfileType:       ident.ProfileType,
		CompanyID:         ident.CompanyID,
		CompanySlug:       ident.CompanySlug,
	}
}
