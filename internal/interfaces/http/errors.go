package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP. Todo lo que no sea
// un centinela conocido sale como 500 con mensaje genérico.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recurso no encontrado"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fail("credenciales inválidas"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("no autorizado"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fail("acceso denegado"))
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrSlugAlreadyExists),
		errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrNoChanges):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(err.Error()))
	case errors.Is(err, domain.ErrUpstream):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("el servicio no está disponible en este momento"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("error interno"))
	}
}

// badRequest respuesta 400 con mensaje legible (cuerpos malformados y
// parámetros inválidos antes de llegar al caso de uso).
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(message))
}
