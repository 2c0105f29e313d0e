package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	salaController "reservasalas_backend/internals/features/salas/controller"
)

func SalaRoutes(api fiber.Router, db *gorm.DB) {
	ctl := salaController.NewSalaController(db, validator.New())

	api.Post("/sala", ctl.Cadastrar)
	api.Get("/sala/:id", ctl.BuscarPorId)
	api.Get("/salas", ctl.Listar)
	api.Get("/salas/instituicao/:instituicaoId", ctl.ListarPorInstituicao)
	api.Patch("/sala/copiar_horario", ctl.CopiarHorario)
	api.Patch("/sala/:id", ctl.Atualizar)
	api.Delete("/sala/:id", ctl.Deletar)
}
