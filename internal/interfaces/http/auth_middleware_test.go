package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appauth "github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
	apphttp "github.com/domicilia/backoffice-api/internal/interfaces/http"
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
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber mínima con login, logout y una
// ruta protegida que expone la identidad cargada por el middleware.
func buildTestApp(t *testing.T) (*fiber.App, *fakeTokenRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-admin"), bcrypt.MinCost)
	require.NoError(t, err)

	admins := &fakeAdminRepo{users: map[string]*entity.AdminUser{
		"admin@acme.fr": {
			ID: 1, CompanyID: 10, SubRoleID: 1,
			Name: "Durand", FirstName: "Claire",
			Email: "admin@acme.fr", PasswordHash: string(hash),
		},
	}}
	basics := &fakeBasicRepo{users: map[string]*entity.BasicUser{}}
	companies := &fakeCompanyRepo{companies: map[int64]*entity.Company{
		10: {ID: 10, Name: "Acme Domiciliation", Slug: "acme-domiciliation"},
	}}
	tokens := &fakeTokenRepo{rows: map[int64]*entity.AccessToken{}}

	authUC := appauth.NewUseCase(appauth.NewResolver(admins, basics, companies), tokens)

	app := fiber.New()
	authHandler := apphttp.NewAuthHandler(authUC, nil)
	guard := apphttp.AuthMiddleware(authUC)
	app.Post("/api/login", authHandler.Login)
	app.Post("/api/logout", guard, authHandler.Logout)
	app.Get("/protected", guard, func(c *fiber.Ctx) error {
		ident := apphttp.CurrentIdentity(c)
		return c.JSON(fiber.Map{
			"email":       ident.Email,
			"companySlug": ident.CompanySlug,
		})
	})
	return app, tokens
}

// loginToken hace login y devuelve el token opaco emitido.
func loginToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@acme.fr", Password: "secret-admin"})
	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NotEmpty(t, envelope.Data.Token)
	return envelope.Data.Token
}

// doProtected lanza una petición GET /protected con el header indicado.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del guard
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token emitido por login → acceso permitido con identidad cargada.
func TestAuthMiddleware_TokenValidoCargaIdentidad(t *testing.T) {
	app, _ := buildTestApp(t)
	tok := loginToken(t, app)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin@acme.fr", body["email"])
	assert.Equal(t, "acme-domiciliation", body["companySlug"],
		"la identidad debe llegar enriquecida con el slug de su empresa")
}

// Caso 2: sin header Authorization → 401.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: esquema distinto de Bearer → 401.
func TestAuthMiddleware_EsquemaInvalido_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doProtected(t, app, "Basic YWRtaW46c2VjcmV0")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token opaco malformado (sin separador, o id no numérico) → 401.
func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, tok := range []string{"sin-separador", "abc|secreto", "999|"} {
		resp := doProtected(t, app, "Bearer "+tok)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "token %q debe ser rechazado", tok)
	}
}

// Caso 5: logout revoca el token presentado; las demás sesiones siguen vivas.
func TestAuthMiddleware_LogoutRevocaSoloEseToken(t *testing.T) {
	app, tokens := buildTestApp(t)
	tok1 := loginToken(t, app)
	tok2 := loginToken(t, app)
	require.Len(t, tokens.rows, 2, "dos logins deben emitir dos tokens")

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tok1)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// El token revocado ya no sirve
	resp = doProtected(t, app, "Bearer "+tok1)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// La otra sesión sobrevive
	resp = doProtected(t, app, "Bearer "+tok2)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 6: login con credenciales inválidas → 422 genérico, sin distinguir
// email desconocido de password incorrecto.
func TestLogin_CredencialesInvalidas_Retorna422Generico(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, in := range []dto.LoginRequest{
		{Email: "nadie@acme.fr", Password: "lo-que-sea"},
		{Email: "admin@acme.fr", Password: "password-malo"},
		{Email: "admin@acme.fr", Password: ""},
	} {
		body, _ := json.Marshal(in)
		req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		var envelope dto.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		resp.Body.Close()
		assert.False(t, envelope.Success)
		assert.Equal(t, "credenciales inválidas", envelope.Message,
			"el mensaje debe ser idéntico en todos los fallos de login")
	}
}
