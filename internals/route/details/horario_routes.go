package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	horarioRoute "reservasalas_backend/internals/features/horarios/route"
)

func HorarioRoutes(api fiber.Router, db *gorm.DB) {
	horarioRoute.HorarioRoutes(api, db)
}
