package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// FileHandler maneja los metadatos documentales: correo escaneado, contratos,
// justificantes, categorías y tipos de documento. El almacenamiento físico de
// los archivos queda fuera: aquí solo viajan URLs y estados.
type FileHandler struct {
	uc *usecase.FileUseCase
}

// NewFileHandler construye el handler documental.
func NewFileHandler(uc *usecase.FileUseCase) *FileHandler {
	return &FileHandler{uc: uc}
}

// queryID devuelve un filtro opcional desde query param (nil si ausente).
func queryID(c *fiber.Ctx, name string) *int64 {
	if v := c.QueryInt(name); v > 0 {
		id := int64(v)
		return &id
	}
	return nil
}

// ── Correo entrante ──────────────────────────────────────────────────────────

// CreateReceived godoc
// @Summary      Registrar correo entrante escaneado
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateReceivedFileRequest  true  "metadatos del correo"
// @Success      201   {object}  dto.Response{data=dto.ReceivedFileResponse}
// @Router       /api/files/received [post]
func (h *FileHandler) CreateReceived(c *fiber.Ctx) error {
	var in dto.CreateReceivedFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateReceived(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetReceived godoc
// @Summary      Obtener correo por ID
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del correo"
// @Success      200  {object}  dto.Response{data=dto.ReceivedFileResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/files/received/{id} [get]
func (h *FileHandler) GetReceived(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetReceived(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListReceived godoc
// @Summary      Listar correos (filtros por empresa y usuario)
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  int  false  "ID de la empresa"
// @Param        user_id     query  int  false  "ID del usuario basic"
// @Success      200         {object}  dto.Response{data=[]dto.ReceivedFileResponse}
// @Router       /api/files/received [get]
func (h *FileHandler) ListReceived(c *fiber.Ctx) error {
	out, err := h.uc.ListReceived(queryID(c, "company_id"), queryID(c, "user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// UpdateReceived godoc
// @Summary      Actualizar correo (marca de envío y archivado)
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del correo"
// @Param        body  body  dto.UpdateReceivedFileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ReceivedFileResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/files/received/{id} [put]
func (h *FileHandler) UpdateReceived(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateReceivedFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateReceived(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ── Contratos ────────────────────────────────────────────────────────────────

// CreateContract godoc
// @Summary      Registrar contrato de domiciliación
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateContractFileRequest  true  "metadatos del contrato"
// @Success      201   {object}  dto.Response{data=dto.ContractFileResponse}
// @Router       /api/files/contracts [post]
func (h *FileHandler) CreateContract(c *fiber.Ctx) error {
	var in dto.CreateContractFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateContract(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetContract godoc
// @Summary      Obtener contrato por ID
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del contrato"
// @Success      200  {object}  dto.Response{data=dto.ContractFileResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/files/contracts/{id} [get]
func (h *FileHandler) GetContract(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	out, err := h.uc.GetContract(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ListContracts godoc
// @Summary      Listar contratos (filtros por empresa y usuario)
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        company_id  query  int  false  "ID de la empresa"
// @Param        user_id     query  int  false  "ID del usuario basic"
// @Success      200         {object}  dto.Response{data=[]dto.ContractFileResponse}
// @Router       /api/files/contracts [get]
func (h *FileHandler) ListContracts(c *fiber.Ctx) error {
	out, err := h.uc.ListContracts(queryID(c, "company_id"), queryID(c, "user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// UpdateContract godoc
// @Summary      Actualizar contrato (estado de firma; las fechas Yousign se sellan solas)
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del contrato"
// @Param        body  body  dto.UpdateContractFileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.ContractFileResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/files/contracts/{id} [put]
func (h *FileHandler) UpdateContract(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateContractFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateContract(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// ── Justificantes ────────────────────────────────────────────────────────────

// CreateSupporting godoc
// @Summary      Registrar justificante aportado por un usuario
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSupportingFileRequest  true  "metadatos del justificante"
// @Success      201   {object}  dto.Response{data=dto.SupportingFileResponse}
// @Router       /api/files/supporting [post]
func (h *FileHandler) CreateSupporting(c *fiber.Ctx) error {
	var in dto.CreateSupportingFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateSupporting(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListSupporting godoc
// @Summary      Listar justificantes (filtro por usuario)
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query  int  false  "ID del usuario basic"
// @Success      200      {object}  dto.Response{data=[]dto.SupportingFileResponse}
// @Router       /api/files/supporting [get]
func (h *FileHandler) ListSupporting(c *fiber.Ctx) error {
	out, err := h.uc.ListSupporting(queryID(c, "user_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// UpdateSupporting godoc
// @Summary      Actualizar justificante (la fecha de validación se sella sola)
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del justificante"
// @Param        body  body  dto.UpdateSupportingFileRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.SupportingFileResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/files/supporting/{id} [put]
func (h *FileHandler) UpdateSupporting(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.UpdateSupportingFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateSupporting(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteSupporting godoc
// @Summary      Eliminar justificante
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID del justificante"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/files/supporting/{id} [delete]
func (h *FileHandler) DeleteSupporting(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteSupporting(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("justificante eliminado", nil))
}

// ── Categorías ───────────────────────────────────────────────────────────────

// CreateCategory godoc
// @Summary      Crear categoría documental
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CategoryFileRequest  true  "datos de la categoría"
// @Success      201   {object}  dto.Response{data=dto.CategoryFileResponse}
// @Router       /api/files/categories [post]
func (h *FileHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateCategory(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListCategories godoc
// @Summary      Listar categorías documentales
// @Tags         files
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CategoryFileResponse}
// @Router       /api/files/categories [get]
func (h *FileHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// UpdateCategory godoc
// @Summary      Actualizar categoría documental
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.CategoryFileRequest  true  "datos de la categoría"
// @Success      200   {object}  dto.Response{data=dto.CategoryFileResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/files/categories/{id} [put]
func (h *FileHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.CategoryFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateCategory(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// DeleteCategory godoc
// @Summary      Eliminar categoría documental
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/files/categories/{id} [delete]
func (h *FileHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	if err := h.uc.DeleteCategory(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKMessage("categoría eliminada", nil))
}

// ── Tipos de documento ───────────────────────────────────────────────────────

// CreateFileType godoc
// @Summary      Crear tipo de documento de domiciliación
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.FileTypeRequest  true  "datos del tipo"
// @Success      201   {object}  dto.Response{data=dto.FileTypeResponse}
// @Router       /api/files/types [post]
func (h *FileHandler) CreateFileType(c *fiber.Ctx) error {
	var in dto.FileTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.CreateFileType(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// ListFileTypes godoc
// @Summary      Listar tipos de documento (sin archivados por defecto)
// @Tags         files
// @Produce      json
// @Param        company_id        query  int   false  "ID de la empresa"
// @Param        include_archived  query  bool  false  "incluir archivados"
// @Success      200               {object}  dto.Response{data=[]dto.FileTypeResponse}
// @Router       /api/files/types [get]
func (h *FileHandler) ListFileTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListFileTypes(queryID(c, "company_id"), c.QueryBool("include_archived"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OKList(len(out), out))
}

// UpdateFileType godoc
// @Summary      Actualizar tipo de documento (el archivado sustituye al borrado)
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "ID del tipo"
// @Param        body  body  dto.FileTypeRequest  true  "datos del tipo"
// @Success      200   {object}  dto.Response{data=dto.FileTypeResponse}
// @Failure      404   {object}  dto.Response
// @Router       /api/files/types/{id} [put]
func (h *FileHandler) UpdateFileType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "id inválido")
	}
	var in dto.FileTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.UpdateFileType(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}
