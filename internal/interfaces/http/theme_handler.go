package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// ThemeHandler maneja los temas de color de las webs de empresa.
type ThemeHandler struct {
	uc *usecase.ThemeUseCase
}

// NewThemeHandler construye el handler de temas.
func NewThemeHandler(uc *usecase.ThemeUseCase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// List godoc
// @Summary      Listar temas (catálogo y propios)
// @Tags         themes
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.ThemeResponse}
// @Router       /api/themes [get]
func (h *ThemeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// GetByID godoc
// @Summary      Obtener tema por ID
// @Tags         themes
// @Produce      json
// @Param        id   path  int  true  "ID del tema"
// @Success      200  {object}  dto.Response{data=dto.ThemeResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/themes/{id} [get]
func (h *ThemeHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// GetByCompany godoc
// @Summary      Obtener el tema propio de una empresa
// @Tags         themes
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200        {object}  dto.Response{data=dto.ThemeResponse}
// @Failure      404        {object}  dto.Response
// @Router       /api/themes/company/{companyId} [get]
func (h *ThemeHandler) GetByCompany(c *fiber.Ctx) error {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		return badRequest(c, "companyId inválido")
	}
	out, err := h.uc.GetByCompany(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Upsert godoc
// @Summary      Crear o reemplazar el tema de una empresa (transaccional)
// @Tags         themes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ThemeUpsertRequest  true  "colores del tema"
// @Success      200   {object}  dto.Response{data=dto.ThemeResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/themes/upsert [post]
func (h *ThemeHandler) Upsert(c *fiber.Ctx) error {
	var in dto.ThemeUpsertRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar un tema propio (los de catálogo no se borran)
// @Tags         themes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del tema"
// @Success      200  {object}  dto.Response
// @Failure      403  {object}  dto.Response
// @Router       /api/themes/{id} [delete]
func (h *ThemeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("tema eliminado", nil))
}
