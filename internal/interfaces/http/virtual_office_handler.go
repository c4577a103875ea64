package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// VirtualOfficeHandler maneja la entidad legal domiciliada de cada usuario.
type VirtualOfficeHandler struct {
	uc *usecase.VirtualOfficeUseCase
}

// NewVirtualOfficeHandler construye el handler.
func NewVirtualOfficeHandler(uc *usecase.VirtualOfficeUseCase) *VirtualOfficeHandler {
	return &VirtualOfficeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear la sociedad domiciliada de un usuario (máximo una)
// @Tags         virtual-offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVirtualOfficeRequest  true  "datos de la sociedad"
// @Success      201   {object}  dto.Response{data=dto.VirtualOfficeResponse}
// @Failure      409   {object}  dto.Response
// @Router       /api/virtual-offices [post]
func (h *VirtualOfficeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVirtualOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener sociedad por ID
// @Tags         virtual-offices
// @Produce      json
// @Param        id   path  int  true  "ID de la sociedad"
// @Success      200  {object}  dto.Response{data=dto.VirtualOfficeResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/virtual-offices/{id} [get]
func (h *VirtualOfficeHandler) GetByID(c *fiber.Ctx) error {
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

// GetByBasicUser godoc
// @Summary      Obtener la sociedad de un usuario
// @Tags         virtual-offices
// @Produce      json
// @Param        userId  path  int  true  "ID del usuario basic"
// @Success      200     {object}  dto.Response{data=dto.VirtualOfficeResponse}
// @Failure      404     {object}  dto.Response
// @Router       /api/virtual-offices/user/{userId} [get]
func (h *VirtualOfficeHandler) GetByBasicUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return badRequest(c, "userId inválido")
	}
	out, err := h.uc.GetByBasicUser(userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar sociedades domiciliadas
// @Tags         virtual-offices
// @Produce      json
// @Param        limit   query  int  false  "límite"  default(50)
// @Param        offset  query  int  false  "offset"  default(0)
// @Success      200     {object}  dto.Response{data=[]dto.VirtualOfficeResponse}
// @Router       /api/virtual-offices [get]
func (h *VirtualOfficeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// Update godoc
// @Summary      Actualizar sociedad
// @Tags         virtual-offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la sociedad"
// @Param        body  body  dto.CreateVirtualOfficeRequest  true  "datos de la sociedad"
// @Success      200   {object}  dto.Response{data=dto.VirtualOfficeResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/virtual-offices/{id} [put]
func (h *VirtualOfficeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.CreateVirtualOfficeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
