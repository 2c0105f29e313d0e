package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken lê o user_id numérico colocado nos Locals pelo
// middleware de autenticação. O core só enxerga a identidade resolvida,
// nunca a credencial crua.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	switch t := v.(type) {
	case uint:
		return t, nil
	case int:
		if t > 0 {
			return uint(t), nil
		}
	case float64:
		if t > 0 {
			return uint(t), nil
		}
	}
	return 0, fiber.NewError(fiber.StatusUnauthorized, "Identidade inválida no token")
}
