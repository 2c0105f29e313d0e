package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reservasalas_backend/internals/features/horarios/dto"
	"reservasalas_backend/internals/features/horarios/grade"
	"reservasalas_backend/internals/features/horarios/model"
	instituicaoModel "reservasalas_backend/internals/features/instituicoes/instituicao/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type HorarioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHorarioController(db *gorm.DB, v *validator.Validate) *HorarioController {
	return &HorarioController{DB: db, Validate: v}
}

func (ctl *HorarioController) ehOrganizador(instituicaoID, usuarioID uint) (bool, error) {
	var inst instituicaoModel.InstituicaoModel
	if err := ctl.DB.First(&inst, instituicaoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fiber.NewError(fiber.StatusNotFound, "Instituição não encontrada")
		}
		return false, err
	}
	return inst.FkOrganizadorID == usuarioID, nil
}

/* =======================================================
   HANDLERS
   ======================================================= */

// Cadastrar — POST /horario
// A grade completa é validada aqui (7 dias, inicio < fim, sem sobreposição);
// a versão antiga só checava "é um array".
func (ctl *HorarioController) Cadastrar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CriarHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := grade.Parse(req.Horario); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	ok, err := ctl.ehOrganizador(req.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode cadastrar horários")
	}

	m := model.HorarioModel{
		FkInstituicaoID: req.FkInstituicaoID,
		Descricao:       req.Descricao,
		Horario:         req.Horario,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao cadastrar horário")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Horário cadastrado com sucesso", dto.ToHorarioResponse(m))
}

// BuscarPorId — GET /horario/:id
func (ctl *HorarioController) BuscarPorId(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do horário deve ser um número válido")
	}

	var m model.HorarioModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Horário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar horário")
	}

	return helper.Success(c, "Horário encontrado", dto.ToHorarioResponse(m))
}

// Listar — GET /horarios?search=
func (ctl *HorarioController) Listar(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.HorarioModel{})
	if search != "" {
		db = db.Where("LOWER(descricao) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var rows []model.HorarioModel
	if err := db.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar horários")
	}

	out := make([]dto.HorarioResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToHorarioResponse(m))
	}
	return helper.SuccessList(c, "Horários listados com sucesso", out, len(out))
}

// ListarPorInstituicao — GET /horarios/instituicao/:instituicaoId
func (ctl *HorarioController) ListarPorInstituicao(c *fiber.Ctx) error {
	instituicaoID, err := strconv.ParseUint(c.Params("instituicaoId"), 10, 64)
	if err != nil || instituicaoID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}

	var rows []model.HorarioModel
	if err := ctl.DB.Where("fk_instituicao_id = ?", instituicaoID).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar horários")
	}

	out := make([]dto.HorarioResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToHorarioResponse(m))
	}
	return helper.SuccessList(c, "Horários listados com sucesso", out, len(out))
}

// Atualizar — PATCH /horario/:id (parcial: descricao e/ou horario)
func (ctl *HorarioController) Atualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do horário deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AtualizarHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Descricao == nil && req.Horario == nil {
		return helper.Error(c, fiber.StatusBadRequest, "Pelo menos um campo (descricao, horario) deve ser fornecido")
	}

	var m model.HorarioModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Horário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar horário")
	}

	ok, err := ctl.ehOrganizador(m.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode alterar horários")
	}

	updates := map[string]interface{}{}
	if req.Descricao != nil {
		updates["descricao"] = *req.Descricao
	}
	if req.Horario != nil {
		if _, err := grade.Parse(*req.Horario); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		updates["horario"] = *req.Horario
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar horário")
	}

	return helper.Success(c, "Horário atualizado com sucesso", dto.ToHorarioResponse(m))
}

// Deletar — DELETE /horario/:id
func (ctl *HorarioController) Deletar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID do horário deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.HorarioModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Horário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar horário")
	}

	ok, err := ctl.ehOrganizador(m.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode remover horários")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao deletar horário")
	}

	return helper.Success(c, "Horário deletado com sucesso", nil)
}
