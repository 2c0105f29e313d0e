package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	horarioController "reservasalas_backend/internals/features/horarios/controller"
)

func HorarioRoutes(api fiber.Router, db *gorm.DB) {
	ctl := horarioController.NewHorarioController(db, validator.New())

	api.Post("/horario", ctl.Cadastrar)
	api.Get("/horario/:id", ctl.BuscarPorId)
	api.Get("/horarios", ctl.Listar)
	api.Get("/horarios/instituicao/:instituicaoId", ctl.ListarPorInstituicao)
	api.Patch("/horario/:id", ctl.Atualizar)
	api.Delete("/horario/:id", ctl.Deletar)
}
