package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/domicilia/backoffice-api/internal/application/auth"
	"github.com/domicilia/backoffice-api/internal/application/dto"
	"github.com/domicilia/backoffice-api/internal/domain/entity"
)

// Locals keys para la identidad autenticada y el token presentado.
const (
	LocalIdentity    = "identity"
	LocalAccessToken = "access_token"
)

// AuthMiddleware valida el Bearer token opaco contra la base y carga en
// c.Locals la identidad (re-resuelta por email en cada petición) y la fila
// del token, que Logout necesita para revocar exactamente esa sesión.
func AuthMiddleware(uc *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("formato: Bearer <token>"))
		}
		plain := strings.TrimSpace(parts[1])
		if plain == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token vacío"))
		}
		ident, row, err := uc.Authenticate(plain)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("token inválido o revocado"))
		}
		c.Locals(LocalIdentity, ident)
		c.Locals(LocalAccessToken, row)
		return c.Next()
	}
}

// CurrentIdentity devuelve la identidad autenticada (después del middleware).
func CurrentIdentity(c *fiber.Ctx) *entity.Identity {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return nil
	}
	ident, _ := v.(*entity.Identity)
	return ident
}

// CurrentToken devuelve la fila del token presentado (después del middleware).
func CurrentToken(c *fiber.Ctx) *entity.AccessToken {
	v := c.Locals(LocalAccessToken)
	if v == nil {
		return nil
	}
	row, _ := v.(*entity.AccessToken)
	return row
}
