package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "reservasalas_backend/internals/features/users/auth/controller"
	"reservasalas_backend/internals/middlewares"
	authMiddleware "reservasalas_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db, validator.New())

	app.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	app.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	app.Post("/logout", authMiddleware.AuthMiddleware(db), ctl.Logout)
}
