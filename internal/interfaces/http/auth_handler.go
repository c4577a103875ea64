package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

// AuthHandler maneja login, logout, perfil y registro.
type AuthHandler struct {
	uc       *auth.UseCase
	register *usecase.RegisterUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, register *usecase.RegisterUseCase) *AuthHandler {
	return &AuthHandler{uc: uc, register: register}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.Response{data=dto.LoginResponse}
// @Failure      422   {object}  dto.Response
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		// Mismo 422 genérico que un password incorrecto: el login no revela
		// qué parte falló.
		return respondError(c, domain.ErrInvalidCredentials)
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Logout godoc
// @Summary      Cerrar sesión (revoca solo el token presentado)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response
// @Failure      401  {object}  dto.Response
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	row := CurrentToken(c)
	if row == nil {
		return respondError(c, domain.ErrUnauthorized)
	}
	if err := h.uc.Logout(row.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("sesión cerrada", nil))
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Response{data=dto.ProfileResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ident := CurrentIdentity(c)
	if ident == nil {
		return respondError(c, domain.ErrUnauthorized)
	}
	return c.JSON(dto.OK(h.uc.Me(ident)))
}

// PasswordHash godoc
// @Summary      Consultar el hash de password de un email (uso administrativo)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        email  query  string  true  "email a consultar"
// @Success      200    {object}  dto.Response{data=dto.PasswordHashResponse}
// @Failure      404    {object}  dto.Response
// @Router       /api/password-hash [get]
func (h *AuthHandler) PasswordHash(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return badRequest(c, "email es requerido")
	}
	out, err := h.uc.PasswordHash(email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Register godoc
// @Summary      Registrar usuario admin o basic
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos del usuario"
// @Success      201   {object}  dto.Response{data=dto.ProfileResponse}
// @Failure      400   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	var fieldErrs []dto.FieldError
	if in.Email == "" {
		fieldErrs = append(fieldErrs, dto.FieldError{Field: "email", Message: "requerido"})
	}
	if len(in.Password) < 8 {
		fieldErrs = append(fieldErrs, dto.FieldError{Field: "password", Message: "mínimo 8 caracteres"})
	}
	if in.TypeOfUser != entity.UserTypeAdmin && in.TypeOfUser != entity.UserTypeBasic {
		fieldErrs = append(fieldErrs, dto.FieldError{Field: "typeOfUser", Message: "admin_user o basic_user"})
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{Success: false, Message: "validación fallida", Errors: fieldErrs})
	}
	out, err := h.register.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}
