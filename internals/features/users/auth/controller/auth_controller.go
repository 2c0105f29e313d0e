package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"reservasalas_backend/internals/configs"
	authModel "reservasalas_backend/internals/features/users/auth/model"
	"reservasalas_backend/internals/features/users/auth/service"
	userDTO "reservasalas_backend/internals/features/users/user/dto"
	userModel "reservasalas_backend/internals/features/users/user/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Register — POST /register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.CriarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao processar senha")
	}

	u := userModel.UsuarioModel{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: string(hash),
		Ativo: true,
	}
	if err := ctl.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email já cadastrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao cadastrar usuário")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuário cadastrado com sucesso", userDTO.ToUsuarioResponse(u))
}

// Login — POST /login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u userModel.UsuarioModel
	if err := ctl.DB.Where("email = ?", req.Email).First(&u).Error; err != nil {
		// mesma mensagem para email inexistente e senha errada
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	if !u.Ativo {
		return helper.Error(c, fiber.StatusForbidden, "Conta desativada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Senha), []byte(req.Senha)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	token, err := service.GerarAccessToken(u.ID, configs.JWTSecret, time.Now())
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao gerar token")
	}

	return helper.Success(c, "Login realizado com sucesso", fiber.Map{
		"token":   token,
		"usuario": userDTO.ToUsuarioResponse(u),
	})
}

// Logout — POST /logout
// Coloca o token na blacklist até o exp; o scheduler varre os vencidos.
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Token ausente")
	}

	_, exp, err := service.ParseAccessToken(raw, configs.JWTSecret)
	if err != nil {
		// token já inválido/expirado: logout é no-op bem sucedido
		return helper.Success(c, "Logout realizado com sucesso", nil)
	}

	entrada := authModel.TokenBlacklist{
		Token:      raw,
		ExpiradoEm: exp,
	}
	if err := ctl.DB.Create(&entrada).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao registrar logout")
	}

	return helper.Success(c, "Logout realizado com sucesso", nil)
}
