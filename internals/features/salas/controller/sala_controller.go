package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agModel "reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/horarios/grade"
	horarioModel "reservasalas_backend/internals/features/horarios/model"
	instituicaoModel "reservasalas_backend/internals/features/instituicoes/instituicao/model"
	"reservasalas_backend/internals/features/salas/dto"
	"reservasalas_backend/internals/features/salas/model"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type SalaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSalaController(db *gorm.DB, v *validator.Validate) *SalaController {
	return &SalaController{DB: db, Validate: v}
}

func (ctl *SalaController) ehOrganizador(instituicaoID, usuarioID uint) (bool, error) {
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

// Cadastrar — POST /sala
func (ctl *SalaController) Cadastrar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CriarSalaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := ctl.ehOrganizador(req.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode cadastrar salas")
	}

	m := model.SalaModel{
		FkInstituicaoID: req.FkInstituicaoID,
		Nome:            req.Nome,
		Descricao:       req.Descricao,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao cadastrar sala")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Sala cadastrada com sucesso", dto.ToSalaResponse(m))
}

// BuscarPorId — GET /sala/:id
func (ctl *SalaController) BuscarPorId(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da sala deve ser um número válido")
	}

	var m model.SalaModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Sala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar sala")
	}

	return helper.Success(c, "Sala encontrada", dto.ToSalaResponse(m))
}

// Listar — GET /salas?search= (busca em nome e descrição)
func (ctl *SalaController) Listar(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.Model(&model.SalaModel{})
	if search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(nome) LIKE ? OR LOWER(COALESCE(descricao,'')) LIKE ?", s, s)
	}

	var rows []model.SalaModel
	if err := db.Order("id ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar salas")
	}

	out := make([]dto.SalaResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSalaResponse(m))
	}
	return helper.SuccessList(c, "Salas listadas com sucesso", out, len(out))
}

// ListarPorInstituicao — GET /salas/instituicao/:instituicaoId
func (ctl *SalaController) ListarPorInstituicao(c *fiber.Ctx) error {
	instituicaoID, err := strconv.ParseUint(c.Params("instituicaoId"), 10, 64)
	if err != nil || instituicaoID == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da instituição deve ser um número válido")
	}

	var rows []model.SalaModel
	if err := ctl.DB.Where("fk_instituicao_id = ?", instituicaoID).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar salas")
	}

	out := make([]dto.SalaResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToSalaResponse(m))
	}
	return helper.SuccessList(c, "Salas listadas com sucesso", out, len(out))
}

// Atualizar — PATCH /sala/:id
func (ctl *SalaController) Atualizar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da sala deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AtualizarSalaRequest
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

	var m model.SalaModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Sala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar sala")
	}

	ok, err := ctl.ehOrganizador(m.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode alterar salas")
	}

	updates := map[string]interface{}{}
	if req.Nome != nil {
		updates["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		updates["descricao"] = *req.Descricao
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar sala")
	}

	return helper.Success(c, "Sala atualizada com sucesso", dto.ToSalaResponse(m))
}

// CopiarHorario — PATCH /sala/copiar_horario
// Clona a grade do esquema de horário para a sala: cópia profunda de valor
// no momento da operação, a sala não referencia o molde.
func (ctl *SalaController) CopiarHorario(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CopiarHorarioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var sala model.SalaModel
	if err := ctl.DB.First(&sala, req.IDSala).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Sala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar sala")
	}

	var horario horarioModel.HorarioModel
	if err := ctl.DB.First(&horario, req.IDHorario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Horário não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar horário")
	}

	ok, err := ctl.ehOrganizador(sala.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode copiar horários")
	}

	g, err := grade.Parse(horario.Horario)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	copia, err := g.Clonar().JSON()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao copiar grade")
	}

	if err := ctl.DB.Model(&sala).Update("horario_funcionamento", copia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao atualizar sala")
	}
	sala.HorarioFuncionamento = copia

	return helper.Success(c, "Horário copiado para a sala com sucesso", dto.ToSalaResponse(sala))
}

// Deletar — DELETE /sala/:id
// Política: nega a remoção enquanto existirem agendamentos referenciando a
// sala, em vez de descartar reservas de usuários em silêncio.
func (ctl *SalaController) Deletar(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID da sala deve ser um número válido")
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.SalaModel
	if err := ctl.DB.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Sala não encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar sala")
	}

	ok, err := ctl.ehOrganizador(m.FkInstituicaoID, usuarioID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !ok {
		return helper.Error(c, fiber.StatusForbidden, "Apenas o organizador da instituição pode remover salas")
	}

	var quantAgendamentos int64
	if err := ctl.DB.Model(&agModel.AgendamentoModel{}).
		Where("fk_salas_id = ?", m.ID).
		Count(&quantAgendamentos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao verificar agendamentos da sala")
	}
	if quantAgendamentos > 0 {
		return helper.Error(c, fiber.StatusConflict, "Sala possui agendamentos; cancele-os antes de removê-la")
	}

	if err := ctl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao deletar sala")
	}

	return helper.Success(c, "Sala deletada com sucesso", nil)
}
