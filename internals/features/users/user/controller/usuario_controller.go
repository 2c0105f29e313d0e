package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendamentoModel "reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/users/user/dto"
	"reservasalas_backend/internals/features/users/user/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type UsuarioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUsuarioController(db *gorm.DB, v *validator.Validate) *UsuarioController {
	return &UsuarioController{DB: db, Validate: v}
}

func parseIDParam(c *fiber.Ctx, nome string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(nome), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID deve ser um número válido")
	}
	return uint(id), nil
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Perfil — GET /usuario (dados do próprio usuário autenticado)
func (ctl *UsuarioController) Perfil(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.UsuarioModel
	if err := ctl.DB.First(&u, usuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}
	return helper.Success(c, "Usuário encontrado", dto.ToUsuarioResponse(u))
}

// BuscarPorId — GET /usuario/:id
func (ctl *UsuarioController) BuscarPorId(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.UsuarioModel
	if err := ctl.DB.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}
	return helper.Success(c, "Usuário encontrado", dto.ToUsuarioResponse(u))
}

// Listar — GET /usuarios (paginado)
func (ctl *UsuarioController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var rows []model.UsuarioModel
	if err := ctl.DB.
		Order("id ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar usuários")
	}

	out := make([]dto.UsuarioResponse, 0, len(rows))
	for _, u := range rows {
		out = append(out, dto.ToUsuarioResponse(u))
	}
	return helper.SuccessList(c, "Usuários listados com sucesso", out, len(out))
}

// Atualizar — PATCH /usuario (o próprio usuário edita nome/email)
func (ctl *UsuarioController) Atualizar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AtualizarUsuarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var u model.UsuarioModel
	if err := ctl.DB.First(&u, usuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if len(updates) == 0 {
		return helper.Success(c, "Nada a atualizar", dto.ToUsuarioResponse(u))
	}

	if err := ctl.DB.Model(&u).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email já cadastrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar usuário")
	}
	return helper.Success(c, "Usuário atualizado com sucesso", dto.ToUsuarioResponse(u))
}

// Deletar — DELETE /usuario (desativação da própria conta)
// Negado enquanto o usuário tiver agendamentos registrados; cancelar os
// agendamentos primeiro mantém o histórico de ocupação consistente.
func (ctl *UsuarioController) Deletar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.UsuarioModel
	if err := ctl.DB.First(&u, usuarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Usuário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}

	var totalAgendamentos int64
	if err := ctl.DB.Model(&agendamentoModel.AgendamentoModel{}).
		Where("fk_usuario_id = ?", usuarioID).
		Count(&totalAgendamentos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao verificar agendamentos")
	}
	if totalAgendamentos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Usuário possui agendamentos; cancele-os antes de excluir a conta")
	}

	if err := ctl.DB.Delete(&u).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao remover usuário")
	}
	return helper.Success(c, "Usuário removido com sucesso", nil)
}
