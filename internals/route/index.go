package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	middlewares "reservasalas_backend/internals/middlewares"
	authMiddleware "reservasalas_backend/internals/middlewares/auth"
	routeDetails "reservasalas_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// conexão disponível nos Locals de toda request
	app.Use(middlewares.DBMiddleware(db))

	BaseRoutes(app, db)

	// ===================== AUTH (pública) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== API AUTENTICADA =====================
	// Tudo abaixo exige JWT válido; o middleware injeta user_id nos Locals.
	log.Println("[INFO] Setting up authenticated API group...")
	api := app.Group("/", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] Mounting Instituicao routes...")
	routeDetails.InstituicaoRoutes(api, db)

	log.Println("[INFO] Mounting Sala routes...")
	routeDetails.SalaRoutes(api, db)

	log.Println("[INFO] Mounting Horario routes...")
	routeDetails.HorarioRoutes(api, db)

	log.Println("[INFO] Mounting Agendamento routes...")
	routeDetails.AgendamentoRoutes(api, db)
}
