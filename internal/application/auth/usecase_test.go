package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	"github.com/domicilia/backoffice-api/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdminRepo struct {
	users map[string]*entity.AdminUser // por email
}

func (f *fakeAdminRepo) Create(u *entity.AdminUser) error { f.users[u.Email] = u; return nil }
func (f *fakeAdminRepo) GetByID(id int64) (*entity.AdminUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeAdminRepo) GetByEmail(email string) (*entity.AdminUser, error) {
	return f.users[email], nil
}
func (f *fakeAdminRepo) Update(u *entity.AdminUser) error { f.users[u.Email] = u; return nil }
func (f *fakeAdminRepo) List(companyID int64, limit, offset int) ([]*entity.AdminUser, error) {
	return nil, nil
}

type fakeBasicRepo struct {
	users map[string]*entity.BasicUser
}

func (f *fakeBasicRepo) Create(u *entity.BasicUser) error { f.users[u.Email] = u; return nil }
func (f *fakeBasicRepo) GetByID(id int64) (*entity.BasicUser, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeBasicRepo) GetByEmail(email string) (*entity.BasicUser, error) {
	return f.users[email], nil
}
func (f *fakeBasicRepo) Update(u *entity.BasicUser) error { f.users[u.Email] = u; return nil }
func (f *fakeBasicRepo) List(companyID int64, limit, offset int) ([]*entity.BasicUser, error) {
	return nil, nil
}
func (f *fakeBasicRepo) Delete(id int64) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

type fakeCompanyRepo struct {
	companies map[int64]*entity.Company
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) GetByID(id int64) (*entity.Company, error) {
	return f.companies[id], nil
}
func (f *fakeCompanyRepo) GetBySlug(slug string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) Update(c *entity.Company) error { f.companies[c.ID] = c; return nil }
func (f *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) Delete(id int64) error {
	delete(f.companies, id)
	return nil
}

type fakeTokenRepo struct {
	nextID int64
	rows   map[int64]*entity.AccessToken
}

func (f *fakeTokenRepo) Create(t *entity.AccessToken) error {
	f.nextID++
	t.ID = f.nextID
	f.rows[t.ID] = t
	return nil
}
func (f *fakeTokenRepo) GetByID(id int64) (*entity.AccessToken, error) { return f.rows[id], nil }
func (f *fakeTokenRepo) Delete(id int64) error {
	delete(f.rows, id)
	return nil
}
func (f *fakeTokenRepo) TouchLastUsed(id int64, at time.Time) error {
	if row, ok := f.rows[id]; ok {
		row.LastUsedAt = &at
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

type fixture struct {
	uc     *appauth.UseCase
	admins *fakeAdminRepo
	basics *fakeBasicRepo
	tokens *fakeTokenRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	admins := &fakeAdminRepo{users: map[string]*entity.AdminUser{
		"admin@acme.fr": {
			ID:           1,
			CompanyID:    10,
			SubRoleID:    1,
			Name:         "Durand",
			FirstName:    "Claire",
			Email:        "admin@acme.fr",
			PasswordHash: mustHash(t, "secret-admin"),
		},
	}}
	basics := &fakeBasicRepo{users: map[string]*entity.BasicUser{
		"client@acme.fr": {
			ID:           7,
			CompanyID:    10,
			Name:         "Martin",
			FirstName:    "Paul",
			Email:        "client@acme.fr",
			PasswordHash: mustHash(t, "secret-client"),
		},
	}}
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		10: {ID: 10, Name: "Acme Domiciliation", Slug: "acme-domiciliation"},
	}}
	tokens := &fakeTokenRepo{rows: map[int64]*entity.AccessToken{}}

	resolver := appauth.NewResolver(admins, basics, companies)
	return &fixture{
		uc:     appauth.NewUseCase(resolver, tokens),
		admins: admins,
		basics: basics,
		tokens: tokens,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_AdminCredencialesValidas(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.Token, "el login debe emitir un token opaco")
	assert.Equal(t, entity.ProfileTypeAdmin, out.User.ProfileType)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "acme-domiciliation", out.User.CompanySlug)

	// El claro nunca se persiste; en la fila solo queda el hash.
	tokenID, secret, err := token.Split(out.Token)
	require.NoError(t, err)
	row := f.tokens.rows[tokenID]
	require.NotNil(t, row)
	assert.NotEqual(t, secret, row.TokenHash)
	assert.True(t, token.Matches(row.TokenHash, secret))
	assert.Equal(t, entity.UserTypeAdmin, row.UserType)
}

func TestLogin_BasicCredencialesValidas(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Login(dto.LoginRequest{Email: "client@acme.fr", Password: "secret-client"})
	require.NoError(t, err)

	assert.Equal(t, entity.ProfileTypeBasic, out.User.ProfileType)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, f.tokens.rows[1].UserType, entity.UserTypeBasic)
}

func TestLogin_EmailInexistente_MismoError(t *testing.T) {
	f := newFixture(t)

	_, errNoUser := f.uc.Login(dto.LoginRequest{Email: "nadie@acme.fr", Password: "x"})
	_, errBadPass := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "incorrecto"})

	// Ambos fallos devuelven exactamente el mismo error, sin distinguir causa.
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Empty(t, f.tokens.rows, "un login fallido no debe emitir tokens")
}

func TestLogin_TokensMultiplesConviven(t *testing.T) {
	f := newFixture(t)

	a, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)
	b, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)
	assert.Len(t, f.tokens.rows, 2, "cada login emite su propio token")
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_TokenValido_DevuelveIdentidadFresca(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)

	ident, row, err := f.uc.Authenticate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@acme.fr", ident.Email)
	assert.Equal(t, entity.UserTypeAdmin, ident.UserType)
	assert.NotNil(t, row.LastUsedAt, "authenticate debe marcar last_used_at")
}

func TestAuthenticate_PerfilActualizadoSeVeSinReemitir(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)

	// Cambio de perfil posterior al login: la identidad se re-resuelve en
	// cada petición, así que el cambio se ve sin reemitir el token.
	f.admins.users["admin@acme.fr"].FirstName = "Camille"

	ident, _, err := f.uc.Authenticate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, "Camille", ident.FirstName)
}

func TestAuthenticate_TokenMalformado(t *testing.T) {
	f := newFixture(t)

	for _, plain := range []string{"", "sin-separador", "abc|secreto", "999|"} {
		_, _, err := f.uc.Authenticate(plain)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "plain=%q", plain)
	}
}

func TestAuthenticate_SecretoIncorrecto(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)

	tokenID, _, err := token.Split(out.Token)
	require.NoError(t, err)

	// ID real pero secreto ajeno: el hash no cuadra.
	_, _, err = f.uc.Authenticate(token.Compose(tokenID, "secretoquenoeselbueno1234567890abcdefghi"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_UsuarioBorradoInvalidaToken(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Login(dto.LoginRequest{Email: "client@acme.fr", Password: "secret-client"})
	require.NoError(t, err)

	require.NoError(t, f.basics.Delete(7))

	_, _, err = f.uc.Authenticate(out.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un token cuyo usuario ya no existe deja de ser válido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevocaSoloElTokenPresentado(t *testing.T) {
	f := newFixture(t)

	a, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)
	b, err := f.uc.Login(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	require.NoError(t, err)

	idA, _, err := token.Split(a.Token)
	require.NoError(t, err)
	require.NoError(t, f.uc.Logout(idA))

	_, _, err = f.uc.Authenticate(a.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el token revocado debe dejar de servir")

	_, _, err = f.uc.Authenticate(b.Token)
	assert.NoError(t, err, "la otra sesión sigue viva después del logout")
}

// ──────────────────────────────────────────────────────────────────────────────
// PasswordHash
// ──────────────────────────────────────────────────────────────────────────────

func TestPasswordHash_DevuelveHashYPerfil(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.PasswordHash("client@acme.fr")
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ID)
	assert.Equal(t, entity.ProfileTypeBasic, out.ProfileType)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out.PasswordHash), []byte("secret-client")))
}

func TestPasswordHash_EmailInexistente(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.PasswordHash("nadie@acme.fr")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// HashPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestHashPassword_GeneraBcryptVerificable(t *testing.T) {
	h, err := appauth.HashPassword("nuevo-password")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("nuevo-password")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("otro")))
}
