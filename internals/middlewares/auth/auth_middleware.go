// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reservasalas_backend/internals/configs"
	tokenModel "reservasalas_backend/internals/features/users/auth/model"
	tokenService "reservasalas_backend/internals/features/users/auth/service"
	userModel "reservasalas_backend/internals/features/users/user/model"
	helper "reservasalas_backend/internals/helpers"
)

// AuthMiddleware valida o JWT, consulta a blacklist e injeta o user_id
// (uint) no Locals para os controllers.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Token do header Authorization ou do cookie
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token ausente")
		}
		helper.SetRawAccessToken(c, tokenString)

		// 2) Blacklist (uma vez por request)
		if c.Locals("token_checked") == nil {
			var existente tokenModel.TokenBlacklist
			err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existente).Error
			if err == nil {
				log.Println("[WARNING] Token encontrado na blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Token revogado")
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] Falha ao consultar blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
			}
			c.Locals("token_checked", true)
		}

		// 3) Assinatura + expiração
		if configs.JWTSecret == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Configuração de JWT ausente")
		}
		usuarioID, _, err := tokenService.ParseAccessToken(tokenString, configs.JWTSecret)
		if err != nil {
			if errors.Is(err, tokenService.ErrTokenExpirado) {
				return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		// 4) Usuário precisa existir e estar ativo
		var u userModel.UsuarioModel
		if err := db.Select("id", "ativo").First(&u, usuarioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuário não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
		}
		if !u.Ativo {
			return fiber.NewError(fiber.StatusForbidden, "Conta desativada")
		}

		c.Locals("user_id", usuarioID)
		return c.Next()
	}
}
