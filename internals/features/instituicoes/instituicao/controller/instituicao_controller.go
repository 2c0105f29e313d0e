package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agModel "reservasalas_backend/internals/features/agendamentos/model"
	horarioModel "reservasalas_backend/internals/features/horarios/model"
	"reservasalas_backend/internals/features/instituicoes/instituicao/dto"
	"reservasalas_backend/internals/features/instituicoes/instituicao/model"
	vinculoModel "reservasalas_backend/internals/features/instituicoes/vinculo/model"
	salaModel "reservasalas_backend/internals/features/salas/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type InstituicaoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewInstituicaoController(db *gorm.DB, v *validator.Validate) *InstituicaoController {
	return &InstituicaoController{DB: db, Validate: v}
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Cadastrar — POST /instituicao
// Quem cadastra vira organizador e já entra com vínculo aceito.
func (ctl *InstituicaoController) Cadastrar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CriarInstituicaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.InstituicaoModel{
		FkOrganizadorID: usuarioID,
		Nome:            req.Nome,
		Descricao:       req.Descricao,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		vinculo := vinculoModel.VinculoModel{
			FkInstituicaoID: m.ID,
			FkUsuarioID:     usuarioID,
			Aceito:          true,
		}
		return tx.Create(&vinculo).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao cadastrar instituição")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Instituição cadastrada com sucesso", dto.ToInstituicaoResponse(m))
}

// BuscarPorId — GET /instituicao/:id
func (ctl *InstituicaoController) BuscarPorId(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}

	var m model.InstituicaoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Instituição não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar instituição")
	}

	return helper.Success(c, "Instituição encontrada", dto.ToInstituicaoResponse(m))
}

// Listar — GET /instituicoes?search=
func (ctl *InstituicaoController) Listar(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.InstituicaoModel{})
	if search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(nome) LIKE ? OR LOWER(COALESCE(descricao,'')) LIKE ?", s, s)
	}

	var rows []model.InstituicaoModel
	if err := db.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar instituições")
	}

	out := make([]dto.InstituicaoResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToInstituicaoResponse(m))
	}
	return helper.SuccessList(c, "Instituições listadas com sucesso", out, len(out))
}

// Atualizar — PATCH /instituicao/:id (só organizador)
func (ctl *InstituicaoController) Atualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AtualizarInstituicaoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Nome == nil && req.Descricao == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Pelo menos um campo (nome, descricao) deve ser fornecido")
	}

	var m model.InstituicaoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Instituição não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar instituição")
	}
	if m.FkOrganizadorID != usuarioID {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador pode alterar a instituição")
	}

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		updates["descricao"] = *req.Descricao
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar instituição")
	}

	return helper.Success(c, "Instituição atualizada com sucesso", dto.ToInstituicaoResponse(m))
}

// Deletar — DELETE /instituicao/:id
// Cascata na camada de aplicação: remove salas, horários e vínculos dentro
// de uma transação. Negado enquanto alguma sala tiver agendamentos.
func (ctl *InstituicaoController) Deletar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.InstituicaoModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Instituição não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar instituição")
	}
	if m.FkOrganizadorID != usuarioID {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador pode remover a instituição")
	}

	var quantAgendamentos int64
	if err := ctl.DB.Model(&agModel.AgendamentoModel{}).
		Joins("JOIN salas ON salas.id = agendamentos.fk_salas_id").
		Where("salas.fk_instituicao_id = ?", m.ID).
		Count(&quantAgendamentos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao verificar agendamentos")
	}
	if quantAgendamentos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Instituição possui salas com agendamentos; cancele-os antes")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fk_instituicao_id = ?", m.ID).Delete(&salaModel.SalaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fk_instituicao_id = ?", m.ID).Delete(&horarioModel.HorarioModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fk_instituicao_id = ?", m.ID).Delete(&vinculoModel.VinculoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao deletar instituição")
	}

	return helper.Success(c, "Instituição deletada com sucesso", nil)
}
