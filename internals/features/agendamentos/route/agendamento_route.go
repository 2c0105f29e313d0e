package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendamentoController "reservasalas_backend/internals/features/agendamentos/controller"
)

func AgendamentoRoutes(api fiber.Router, db *gorm.DB) {
	ctl := agendamentoController.NewAgendamentoController(db, validator.New())

	api.Post("/agendamento", ctl.Cadastrar)
	api.Get("/agendamento/:id", ctl.BuscarPorId)
	api.Delete("/agendamento/:id", ctl.Deletar)

	// /agendamentos/usuario precisa vir antes da rota com parâmetros,
	// senão o Fiber casa "usuario" como :salas_id.
	api.Get("/agendamentos", ctl.Listar)
	api.Get("/agendamentos/usuario", ctl.ListarPorUsuario)
	api.Get("/agendamentos/:salas_id/:data_agendamento", ctl.VerificarDisponibilidade)
}
