package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instituicaoController "reservasalas_backend/internals/features/instituicoes/instituicao/controller"
)

func InstituicaoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := instituicaoController.NewInstituicaoController(db, validator.New())

	api.Post("/instituicao", ctl.Cadastrar)
	api.Get("/instituicao/:id", ctl.BuscarPorId)
	api.Get("/instituicoes", ctl.Listar)
	api.Patch("/instituicao/:id", ctl.Atualizar)
	api.Delete("/instituicao/:id", ctl.Deletar)
}
