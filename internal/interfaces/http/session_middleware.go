package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/obrasur/remitos-api/internal/application/auth"
	"github.com/obrasur/remitos-api/internal/application/dto"
	"github.com/obrasur/remitos-api/internal/domain/entity"
)

const sessionUserKey = "session_user"

// SessionMiddleware restaura la sesión persistida en cada petición protegida
// y la deja disponible vía SessionUser. Sin sesión activa responde 401.
//
// No hay token ni expiración: la sesión es el último usuario persistido por
// el login, una simplificación deliberada del núcleo local.
func SessionMiddleware(authUC *auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := authUC.Restore(c.Context())
		if err != nil {
			return writeError(c, err)
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		c.Locals(sessionUserKey, *user)
		return c.Next()
	}
}

// AdminOnly exige rol admin; se apila después de SessionMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := SessionUser(c)
		if !ok || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol admin"})
		}
		return c.Next()
	}
}

// SessionUser devuelve el usuario de la sesión activa, si lo hay.
func SessionUser(c *fiber.Ctx) (entity.User, bool) {
	user, ok := c.Locals(sessionUserKey).(entity.User)
	return user, ok
}
