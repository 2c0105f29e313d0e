package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "reservasalas_backend/internals/features/users/user/controller"
)

// UserRoutes monta as rotas de usuário num grupo já autenticado.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUsuarioController(db, validator.New())

	api.Get("/usuario", ctl.Perfil)
	api.Get("/usuario/:id", ctl.BuscarPorId)
	api.Get("/usuarios", ctl.Listar)
	api.Patch("/usuario", ctl.Atualizar)
	api.Delete("/usuario", ctl.Deletar)
}
