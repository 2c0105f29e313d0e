package dto

import (
	"strings"

	"gorm.io/datatypes"

	"reservasalas_backend/internals/features/salas/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CriarSalaRequest struct {
	FkInstituicaoID uint   `json:"fk_instituicao_id" validate:"required"`
	Nome            string `json:"nome" validate:"required,min=3,max=100"`
	Descricao       string `json:"descricao" validate:"omitempty,max=500"`
}

func (r *CriarSalaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Descricao = strings.TrimSpace(r.Descricao)
}

type AtualizarSalaRequest struct {
	Nome      *string `json:"nome,omitempty" validate:"omitempty,min=3,max=100"`
	Descricao *string `json:"descricao,omitempty" validate:"omitempty,max=500"`
}

func (r *AtualizarSalaRequest) Normalize() {
	if r.Nome != nil {
		n := strings.TrimSpace(*r.Nome)
		r.Nome = &n
	}
	if r.Descricao != nil {
		d := strings.TrimSpace(*r.Descricao)
		r.Descricao = &d
	}
}

// CopiarHorarioRequest é o corpo do PATCH /sala/copiar_horario: clona a
// grade do esquema id_horario para a sala id_sala.
type CopiarHorarioRequest struct {
	IDSala    uint `json:"id_sala" validate:"required"`
	IDHorario uint `json:"id_horario" validate:"required"`
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type SalaResponse struct {
	ID                   uint           `json:"id"`
	FkInstituicaoID      uint           `json:"fk_instituicao_id"`
	Nome                 string         `json:"nome"`
	Descricao            string         `json:"descricao"`
	HorarioFuncionamento datatypes.JSON `json:"horario_funcionamento,omitempty"`
}

func ToSalaResponse(m model.SalaModel) SalaResponse {
	return SalaResponse{
		ID:                   m.ID,
		FkInstituicaoID:      m.FkInstituicaoID,
		Nome:                 m.Nome,
		Descricao:            m.Descricao,
		HorarioFuncionamento: m.HorarioFuncionamento,
	}
}
