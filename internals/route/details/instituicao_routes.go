package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instituicaoRoute "reservasalas_backend/internals/features/instituicoes/instituicao/route"
	vinculoRoute "reservasalas_backend/internals/features/instituicoes/vinculo/route"
)

func InstituicaoRoutes(api fiber.Router, db *gorm.DB) {
	instituicaoRoute.InstituicaoRoutes(api, db)
	vinculoRoute.VinculoRoutes(api, db)
}
