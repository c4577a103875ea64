package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/billing"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain/repository"
)

// InvoiceHandler maneja las facturas de suscripción.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler de facturas.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar facturas (filtro por oferta)
// @Tags         invoices
// @Produce      json
// @Param        offer_id    query  int   false  "ID de la oferta"
// @Param        with_offer  query  bool  false  "solo facturas ligadas a una oferta"
// @Success      200         {object}  dto.Response{data=[]dto.InvoiceResponse}
// @Router       /api/invoice [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var f repository.InvoiceFilter
	if v := c.QueryInt("offer_id"); v > 0 {
		id := int64(v)
		f.VirtualOfficeOfferID = &id
	}
	f.OnlyWithOffer = c.QueryBool("with_offer")
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// ListSingle godoc
// @Summary      Listar facturas con oferta embebida (filtro por cliente)
// @Tags         invoices
// @Produce      json
// @Param        user_id  query  int  false  "ID del usuario basic"
// @Success      200      {object}  dto.Response{data=[]dto.InvoiceResponse}
// @Router       /api/invoice/single [get]
func (h *InvoiceHandler) ListSingle(c *fiber.Ctx) error {
	var f repository.InvoiceFilter
	if v := c.QueryInt("user_id"); v > 0 {
		id := int64(v)
		f.BasicUserID = &id
	}
	out, err := h.uc.List(f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// GetByID godoc
// @Summary      Obtener una factura con su oferta
// @Tags         invoices
// @Produce      json
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/invoice/single/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
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

// DownloadPDF godoc
// @Summary      Descargar la factura renderizada en PDF
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.Response
// @Router       /api/invoice/single/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Latest godoc
// @Summary      Numeración sugerida para la próxima factura del tenant
// @Tags         invoices
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200        {object}  dto.Response{data=dto.LatestInvoiceResponse}
// @Failure      404        {object}  dto.Response
// @Router       /api/invoice/latest/{companyId} [get]
func (h *InvoiceHandler) Latest(c *fiber.Ctx) error {
	companyID, err := parseID(c, "companyId")
	if err != nil {
		return badRequest(c, "companyId inválido")
	}
	out, err := h.uc.Latest(companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Create godoc
// @Summary      Crear factura (subscription_status derivado del status)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "datos de la factura"
// @Success      201   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/invoice [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar factura (parcial; 409 si ningún campo cambia)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la factura"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.InvoiceResponse}
// @Failure      404   {object}  dto.Response
// @Failure      409   {object}  dto.Response
// @Router       /api/invoice/single/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
