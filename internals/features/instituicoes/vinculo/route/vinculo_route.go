package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vinculoController "reservasalas_backend/internals/features/instituicoes/vinculo/controller"
)

func VinculoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := vinculoController.NewVinculoController(db, validator.New())

	api.Post("/vinculo", ctl.Cadastrar)
	api.Post("/vinculo/solicitar", ctl.Solicitar)
	api.Patch("/vinculo/:id/aceitar", ctl.Aceitar)
	api.Patch("/vinculo/:id/bloquear", ctl.Bloquear)
	api.Patch("/vinculo/:id/desbloquear", ctl.Desbloquear)
	api.Delete("/vinculo/:id/sair", ctl.Sair)
	api.Delete("/vinculo/:id", ctl.Remover)
	api.Get("/vinculos/instituicao/:instituicaoId", ctl.ListarPorInstituicao)
	api.Get("/vinculos/usuario", ctl.ListarPorUsuario)
}
