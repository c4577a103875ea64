package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// UserHandler maneja usuarios basic (clientes) y admin (back-office).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// ── Basic users ──────────────────────────────────────────────────────────────

// ListBasic godoc
// @Summary      Listar usuarios basic de una empresa
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path   int  true   "ID de la empresa"
// @Param        limit      query  int  false  "límite"  default(50)
// @Param        offset     query  int  false  "offset"  default(0)
// @Success      200        {object}  dto.Response{data=[]dto.BasicUserResponse}
// @Router       /api/users/basic/company/{companyId} [get]
func (h *UserHandler) ListBasic(c *fiber.Ctx) error {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		return badRequest(c, "companyId inválido")
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	out, err := h.uc.ListBasic(companyID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// GetBasic godoc
// @Summary      Obtener usuario basic por ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.Response{data=dto.BasicUserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/basic/{id} [get]
func (h *UserHandler) GetBasic(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetBasicByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateBasic godoc
// @Summary      Actualizar usuario basic (parcial; el email nunca cambia)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateBasicUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.BasicUserResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/users/basic/{id} [put]
func (h *UserHandler) UpdateBasic(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateBasicUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateBasic(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteBasic godoc
// @Summary      Eliminar usuario basic (borrado físico)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/users/basic/{id} [delete]
func (h *UserHandler) DeleteBasic(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteBasic(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("usuario eliminado", nil))
}

// ── Admin users ──────────────────────────────────────────────────────────────

// ListAdmins godoc
// @Summary      Listar administradores de una empresa
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        companyId  path   int  true   "ID de la empresa"
// @Param        limit      query  int  false  "límite"  default(50)
// @Param        offset     query  int  false  "offset"  default(0)
// @Success      200        {object}  dto.Response{data=[]dto.AdminUserResponse}
// @Router       /api/users/admin/company/{companyId} [get]
func (h *UserHandler) ListAdmins(c *fiber.Ctx) error {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		return badRequest(c, "companyId inválido")
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	out, err := h.uc.ListAdmins(companyID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// GetAdmin godoc
// @Summary      Obtener administrador por ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del administrador"
// @Success      200  {object}  dto.Response{data=dto.AdminUserResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/users/admin/{id} [get]
func (h *UserHandler) GetAdmin(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetAdminByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateAdmin godoc
// @Summary      Actualizar administrador (sin borrado físico; ciclo de vida con is_banned)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del administrador"
// @Param        body  body  dto.UpdateAdminUserRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.AdminUserResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/users/admin/{id} [put]
func (h *UserHandler) UpdateAdmin(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateAdminUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateAdmin(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
