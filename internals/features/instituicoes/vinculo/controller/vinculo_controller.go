package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instituicaoModel "reservasalas_backend/internals/features/instituicoes/instituicao/model"
	"reservasalas_backend/internals/features/instituicoes/vinculo/dto"
	"reservasalas_backend/internals/features/instituicoes/vinculo/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type VinculoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVinculoController(db *gorm.DB, v *validator.Validate) *VinculoController {
	return &VinculoController{DB: db, Validate: v}
}

// Detecta violação de chave única (o índice em instituicao/usuario é quem
// barra vínculo duplicado, não uma checagem antes do insert).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}

func (ctl *VinculoController) buscarInstituicao(id uint) (*instituicaoModel.InstituicaoModel, error) {
	var inst instituicaoModel.InstituicaoModel
	if err := ctl.DB.First(&inst, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Instituição não encontrada")
		}
		return nil, err
	}
	return &inst, nil
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Solicitar — POST /vinculo/solicitar (autocadastro, fica pendente)
func (ctl *VinculoController) Solicitar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SolicitarVinculoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctl.buscarInstituicao(req.FkInstituicaoID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := model.VinculoModel{
		FkInstituicaoID: req.FkInstituicaoID,
		FkUsuarioID:     usuarioID,
		Aceito:          false,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Usuário já possui vínculo com esta instituição")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao solicitar vínculo")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Solicitação de vínculo registrada", dto.ToVinculoResponse(m))
}

// Cadastrar — POST /vinculo (organizador adiciona direto, já aceito)
func (ctl *VinculoController) Cadastrar(c *fiber.Ctx) error {
	solicitanteID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CadastrarVinculoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	inst, err := ctl.buscarInstituicao(req.FkInstituicaoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if inst.FkOrganizadorID != solicitanteID {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador pode adicionar usuários")
	}

	m := model.VinculoModel{
		FkInstituicaoID: req.FkInstituicaoID,
		FkUsuarioID:     req.FkUsuarioID,
		Aceito:          true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "Usuário já possui vínculo com esta instituição")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao cadastrar vínculo")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Vínculo cadastrado com sucesso", dto.ToVinculoResponse(m))
}

// Aceitar — PATCH /vinculo/:id/aceitar (organizador aprova solicitação)
func (ctl *VinculoController) Aceitar(c *fiber.Ctx) error {
	return ctl.mudarFlag(c, "aceito", true, "Vínculo aceito com sucesso")
}

// Bloquear — PATCH /vinculo/:id/bloquear
func (ctl *VinculoController) Bloquear(c *fiber.Ctx) error {
	return ctl.mudarFlag(c, "bloqueado", true, "Vínculo bloqueado com sucesso")
}

// Desbloquear — PATCH /vinculo/:id/desbloquear
func (ctl *VinculoController) Desbloquear(c *fiber.Ctx) error {
	return ctl.mudarFlag(c, "bloqueado", false, "Vínculo desbloqueado com sucesso")
}

func (ctl *VinculoController) mudarFlag(c *fiber.Ctx, campo string, valor bool, msg string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do vínculo deve ser um número válido")
	}
	solicitanteID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.VinculoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Vínculo não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar vínculo")
	}

	inst, err := ctl.buscarInstituicao(m.FkInstituicaoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if inst.FkOrganizadorID != solicitanteID {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador pode gerenciar vínculos")
	}

	if err := ctl.DB.Model(&m).Update(campo, valor).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar vínculo")
	}
	return helper.Success(c, msg, dto.ToVinculoResponse(m))
}

// Sair — DELETE /vinculo/:id/sair (o próprio usuário desfaz o vínculo)
func (ctl *VinculoController) Sair(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do vínculo deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.VinculoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Vínculo não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar vínculo")
	}
	if m.FkUsuarioID != usuarioID {
		return helper.Error(c, fiber.StatusForbidden, "Só é possível desfazer o próprio vínculo")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao remover vínculo")
	}
	return helper.Success(c, "Vínculo desfeito com sucesso", nil)
}

// Remover — DELETE /vinculo/:id (organizador remove membro)
func (ctl *VinculoController) Remover(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do vínculo deve ser um número válido")
	}
	solicitanteID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.VinculoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Vínculo não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar vínculo")
	}

	inst, err := ctl.buscarInstituicao(m.FkInstituicaoID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if inst.FkOrganizadorID != solicitanteID {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador pode remover vínculos")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao remover vínculo")
	}
	return helper.Success(c, "Vínculo removido com sucesso", nil)
}

// ListarPorInstituicao — GET /vinculos/instituicao/:instituicaoId
func (ctl *VinculoController) ListarPorInstituicao(c *fiber.Ctx) error {
	instituicaoID, err := strconv.ParseUint(c.Params("instituicaoId"), 10, 64)
	if err != nil || instituicaoID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}

	var rows []model.VinculoModel
	if err := ctl.DB.Where("fk_instituicao_id = ?", instituicaoID).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar vínculos")
	}

	out := make([]dto.VinculoResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToVinculoResponse(m))
	}
	return helper.SuccessList(c, "Vínculos listados com sucesso", out, len(out))
}

// ListarPorUsuario — GET /vinculos/usuario (identidade do token)
func (ctl *VinculoController) ListarPorUsuario(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var rows []model.VinculoModel
	if err := ctl.DB.Where("fk_usuario_id = ?", usuarioID).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar vínculos")
	}

	out := make([]dto.VinculoResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToVinculoResponse(m))
	}
	return helper.SuccessList(c, "Vínculos do usuário", out, len(out))
}
