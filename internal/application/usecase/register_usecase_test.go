package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

func newRegisterFixture() (*usecase.RegisterUseCase, *fakeAdminRepo, *fakeBasicRepo) {
	admins := &fakeAdminRepo{users: map[string]*entity.AdminUser{}}
	basics := &fakeBasicRepo{users: map[string]*entity.BasicUser{
		"client@acme.fr": {ID: 1, Email: "client@acme.fr"},
	}, nextID: 1}
	subRoles := &fakeSubRoleRepo{roles: map[string]*entity.SubRole{
		"owner":   {ID: 1, Label: "owner"},
		"manager": {ID: 2, Label: "manager"},
	}}
	return usecase.NewRegisterUseCase(admins, basics, subRoles), admins, basics
}

func TestRegister_AdminConSubRolPorEtiqueta(t *testing.T) {
	uc, admins, _ := newRegisterFixture()

	out, err := uc.Register(dto.RegisterRequest{
		Name:       "Durand",
		FirstName:  "Claire",
		Email:      "admin@acme.fr",
		Password:   "secret",
		TypeOfUser: entity.UserTypeAdmin,
		TagOfAdmin: "manager",
		CompanyID:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProfileTypeAdmin, out.ProfileType)
	created := admins.users["admin@acme.fr"]
	require.NotNil(t, created)
	assert.Equal(t, int64(2), created.SubRoleID, "el sub-rol se resuelve por etiqueta")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")),
		"el password se persiste hasheado")
}

func TestRegister_BasicUser(t *testing.T) {
	uc, _, basics := newRegisterFixture()

	out, err := uc.Register(dto.RegisterRequest{
		Name:       "Martin",
		Email:      "nuevo@acme.fr",
		Password:   "secret",
		TypeOfUser: entity.UserTypeBasic,
		CompanyID:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ProfileTypeBasic, out.ProfileType)
	assert.NotNil(t, basics.users["nuevo@acme.fr"])
}

func TestRegister_EmailOcupadoEnLaOtraTabla(t *testing.T) {
	uc, _, _ := newRegisterFixture()

	// client@acme.fr ya existe como basic_user; tampoco puede entrar en
	// admin_user: la unicidad se evalúa sobre la unión de ambas tablas.
	_, err := uc.Register(dto.RegisterRequest{
		Name:       "X",
		Email:      "client@acme.fr",
		Password:   "secret",
		TypeOfUser: entity.UserTypeAdmin,
		TagOfAdmin: "owner",
		CompanyID:  10,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_SubRolDesconocido(t *testing.T) {
	uc, admins, _ := newRegisterFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Name:       "X",
		Email:      "otro@acme.fr",
		Password:   "secret",
		TypeOfUser: entity.UserTypeAdmin,
		TagOfAdmin: "inexistente",
		CompanyID:  10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, admins.users, "un sub-rol inválido no debe crear nada")
}

func TestRegister_TipoDeUsuarioInvalido(t *testing.T) {
	uc, _, _ := newRegisterFixture()

	_, err := uc.Register(dto.RegisterRequest{
		Name:       "X",
		Email:      "otro@acme.fr",
		Password:   "secret",
		TypeOfUser: "super_user",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_CamposObligatorios(t *testing.T) {
	uc, _, _ := newRegisterFixture()

	_, err := uc.Register(dto.RegisterRequest{Email: "x@acme.fr", TypeOfUser: entity.UserTypeBasic})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
