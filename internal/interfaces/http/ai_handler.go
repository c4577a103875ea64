package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/application/usecase"
)

// AIHandler maneja el asistente conversacional y el análisis de courriers.
type AIHandler struct {
	chat     *usecase.ChatUseCase
	analysis *usecase.AnalysisUseCase
}

// NewAIHandler construye el handler de IA.
func NewAIHandler(chat *usecase.ChatUseCase, analysis *usecase.AnalysisUseCase) *AIHandler {
	return &AIHandler{chat: chat, analysis: analysis}
}

// Chat godoc
// @Summary      Chat del asistente con contexto de empresa
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "mensaje y companyData"
// @Success      200   {object}  dto.Response{data=dto.ChatResponse}
// @Failure      400   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.chat.Chat(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(out))
}

// AnalyzeFile godoc
// @Summary      Extraer campos de un courrier escaneado
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnalyzeFileRequest  true  "texto del courrier"
// @Success      200   {object}  dto.Response{data=dto.MailAnalysis}
// @Failure      400   {object}  dto.Response
// @Failure      500   {object}  dto.Response
// @Router       /api/analyze-file [post]
func (h *AIHandler) AnalyzeFile(c *fiber.Ctx) error {
	var in dto.AnalyzeFileRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.analysis.Analyze(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	// Si el modelo no devolvió JSON parseable, se conserva la respuesta cruda
	// y success queda en false para que el back-office lo muestre tal cual.
	if out.Raw != "" {
		return c.JSON(dto.Response{Success: false, Message: "respuesta no estructurada", Data: out})
	}
	return c.JSON(dto.OK(out))
}
