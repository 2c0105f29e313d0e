package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"reservasalas_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem certa:
// recovery primeiro para cobrir tudo que vem depois.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
