package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendamentoRoute "reservasalas_backend/internals/features/agendamentos/route"
)

func AgendamentoRoutes(api fiber.Router, db *gorm.DB) {
	agendamentoRoute.AgendamentoRoutes(api, db)
}
