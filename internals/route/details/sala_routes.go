package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	salaRoute "reservasalas_backend/internals/features/salas/route"
)

func SalaRoutes(api fiber.Router, db *gorm.DB) {
	salaRoute.SalaRoutes(api, db)
}
