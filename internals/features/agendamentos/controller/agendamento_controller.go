package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"reservasalas_backend/internals/features/agendamentos/dto"
	"reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/agendamentos/service"
	helper "reservasalas_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type AgendamentoController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAgendamentoController(db *gorm.DB, v *validator.Validate) *AgendamentoController {
	return &AgendamentoController{DB: db, Validate: v}
}

// mapServiceError traduz os erros tipados do service para o envelope HTTP.
// Conflito de intervalo sai como 409 (a versão antiga devolvia 400 com
// mensagem de conflito).
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrDataInvalida),
		errors.Is(err, service.ErrHorariosVazios),
		errors.Is(err, service.ErrIntervaloInvalido),
		errors.Is(err, service.ErrIntervaloDuplicado),
		errors.Is(err, service.ErrForaDaGrade):
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSalaNaoEncontrada),
		errors.Is(err, service.ErrAgendamentoNaoEncontrado):
		return helper.NotFound(c, err.Error())
	case errors.Is(err, service.ErrSemVinculo),
		errors.Is(err, service.ErrSemPermissao):
		return helper.Error(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrConflitoAgendamento):
		return helper.Error(c, fiber.StatusConflict, err.Error())
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Erro interno ao processar agendamento")
	}
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

// VerificarDisponibilidade — GET /agendamentos/:salas_id/:data_agendamento
func (ctl *AgendamentoController) VerificarDisponibilidade(c *fiber.Ctx) error {
	salaID, err := parseIDParam(c, "salas_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	data := c.Params("data_agendamento")

	slots, err := service.VerificarDisponibilidade(ctl.DB, salaID, data)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.SuccessList(c, "Disponibilidade da sala", fiber.Map{
		"fk_salas_id":      salaID,
		"data_agendamento": data,
		"slots":            slots,
	}, len(slots))
}

// Cadastrar — POST /agendamento
func (ctl *AgendamentoController) Cadastrar(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CriarAgendamentoRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	ag, err := service.Agendar(ctl.DB, usuarioID, req.FkSalasID, req.DataAgendamento, req.Horarios, req.Proposito)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Agendamento cadastrado com sucesso", dto.ToAgendamentoResponse(*ag))
}

// BuscarPorId — GET /agendamento/:id
func (ctl *AgendamentoController) BuscarPorId(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ag model.AgendamentoModel
	if err := ctl.DB.Preload("Horarios").First(&ag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.NotFound(c, "Agendamento não encontrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao buscar agendamento")
	}

	return helper.Success(c, "Agendamento encontrado", dto.ToAgendamentoResponse(ag))
}

// Listar — GET /agendamentos
func (ctl *AgendamentoController) Listar(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var ags []model.AgendamentoModel
	if err := ctl.DB.Preload("Horarios").
		Order("data_agendamento DESC, id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&ags).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar agendamentos")
	}

	out := make([]dto.AgendamentoResponse, 0, len(ags))
	for _, ag := range ags {
		out = append(out, dto.ToAgendamentoResponse(ag))
	}
	return helper.SuccessList(c, "Agendamentos listados com sucesso", out, len(out))
}

// ListarPorUsuario — GET /agendamentos/usuario (identidade do token)
func (ctl *AgendamentoController) ListarPorUsuario(c *fiber.Ctx) error {
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var ags []model.AgendamentoModel
	if err := ctl.DB.Preload("Horarios").
		Where("fk_usuario_id = ?", usuarioID).
		Order("data_agendamento DESC, id DESC").
		Find(&ags).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Erro ao listar agendamentos do usuário")
	}

	out := make([]dto.AgendamentoResponse, 0, len(ags))
	for _, ag := range ags {
		out = append(out, dto.ToAgendamentoResponse(ag))
	}
	return helper.SuccessList(c, "Agendamentos do usuário", out, len(out))
}

// Deletar — DELETE /agendamento/:id (dono ou organizador)
func (ctl *AgendamentoController) Deletar(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	usuarioID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := service.Deletar(ctl.DB, id, usuarioID); err != nil {
		return mapServiceError(c, err)
	}
	return helper.Success(c, "Agendamento deletado com sucesso", nil)
}
