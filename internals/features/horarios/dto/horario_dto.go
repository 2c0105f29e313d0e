package dto

import (
	"strings"

	"gorm.io/datatypes"

	"reservasalas_backend/internals/features/horarios/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CriarHorarioRequest struct {
	FkInstituicaoID uint           `json:"fk_instituicao_id" validate:"required"`
	Descricao       string         `json:"descricao" validate:"required,min=3,max=255"`
	Horario         datatypes.JSON `json:"horario" validate:"required"`
}

func (r *CriarHorarioRequest) Normalize() {
	r.Descricao = strings.TrimSpace(r.Descricao)
}

// AtualizarHorarioRequest é o PATCH parcial: só os campos enviados mudam.
type AtualizarHorarioRequest struct {
	Descricao *string         `json:"descricao,omitempty" validate:"omitempty,min=3,max=255"`
	Horario   *datatypes.JSON `json:"horario,omitempty"`
}

func (r *AtualizarHorarioRequest) Normalize() {
	if r.Descricao != nil {
		d := strings.TrimSpace(*r.Descricao)
		r.Descricao = &d
	}
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type HorarioResponse struct {
	ID              uint           `json:"id"`
	FkInstituicaoID uint           `json:"fk_instituicao_id"`
	Descricao       string         `json:"descricao"`
	Horario         datatypes.JSON `json:"horario"`
}

func ToHorarioResponse(m model.HorarioModel) HorarioResponse {
	return HorarioResponse{
		ID:              m.ID,
		FkInstituicaoID: m.FkInstituicaoID,
		Descricao:       m.Descricao,
		Horario:         m.Horario,
	}
}
