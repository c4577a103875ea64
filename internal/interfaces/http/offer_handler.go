package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// OfferHandler maneja las ofertas de bureau virtual.
type OfferHandler struct {
	uc *usecase.OfferUseCase
}

// NewOfferHandler construye el handler de ofertas.
func NewOfferHandler(uc *usecase.OfferUseCase) *OfferHandler {
	return &OfferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear oferta (da de alta producto y precio en Stripe)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateOfferRequest  true  "datos de la oferta"
// @Success      201   {object}  dto.Response{data=dto.OfferResponse}
// @Failure      400   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/offers [post]
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener oferta por ID
// @Tags         offers
// @Produce      json
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.Response{data=dto.OfferResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/offers/{id} [get]
func (h *OfferHandler) GetByID(c *fiber.Ctx) error {
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

// List godoc
// @Summary      Listar ofertas (filtro por empresa: id o slug)
// @Tags         offers
// @Produce      json
// @Param        company_id    query  int     false  "ID de la empresa"
// @Param        company_slug  query  string  false  "slug de la empresa"
// @Success      200           {object}  dto.Response{data=[]dto.OfferResponse}
// @Router       /api/offers [get]
func (h *OfferHandler) List(c *fiber.Ctx) error {
	var f repository.OfferFilter
	if v := c.QueryInt("company_id"); v > 0 {
		id := int64(v)
		f.CompanyID = &id
	}
	f.CompanySlug = c.Query("company_slug")
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// Update godoc
// @Summary      Actualizar oferta (parcial; el precio Stripe no se regenera)
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la oferta"
// @Param        body  body  dto.UpdateOfferRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.OfferResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/offers/{id} [put]
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateOfferRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar oferta
// @Tags         offers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la oferta"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/offers/{id} [delete]
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("oferta eliminada", nil))
}
