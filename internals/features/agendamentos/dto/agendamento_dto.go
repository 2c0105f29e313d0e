package dto

import (
	"strings"

	"reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/horarios/grade"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CriarAgendamentoRequest é o corpo do POST /agendamento. O fk_usuario_id do
// corpo é aceito por compatibilidade de contrato, mas a identidade efetiva
// vem sempre do token resolvido pelo middleware.
type CriarAgendamentoRequest struct {
	FkUsuarioID     uint              `json:"fk_usuario_id,omitempty"`
	FkSalasID       uint              `json:"fk_salas_id" validate:"required"`
	DataAgendamento string            `json:"data_agendamento" validate:"required"`
	Horarios        []grade.Intervalo `json:"horarios" validate:"required,min=1"`
	Proposito       string            `json:"proposito" validate:"omitempty,max=500"`
}

func (r *CriarAgendamentoRequest) Normalize() {
	r.DataAgendamento = strings.TrimSpace(r.DataAgendamento)
	r.Proposito = strings.TrimSpace(r.Proposito)
	for i := range r.Horarios {
		r.Horarios[i].Inicio = strings.TrimSpace(r.Horarios[i].Inicio)
		r.Horarios[i].Fim = strings.TrimSpace(r.Horarios[i].Fim)
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// SlotDisponibilidade é um slot da grade anotado com ocupação. Exatamente um
// dos dois vale: disponivel=true com usuario_id null, ou disponivel=false
// com usuario_id preenchido.
type SlotDisponibilidade struct {
	Inicio     string `json:"inicio"`
	Fim        string `json:"fim"`
	Disponivel bool   `json:"disponivel"`
	UsuarioID  *uint  `json:"usuario_id"`
}

type AgendamentoResponse struct {
	ID              uint                    `json:"id"`
	FkUsuarioID     uint                    `json:"fk_usuario_id"`
	FkSalasID       uint                    `json:"fk_salas_id"`
	DataAgendamento string                  `json:"data_agendamento"`
	Horarios        []grade.Intervalo       `json:"horarios"`
	Proposito       string                  `json:"proposito"`
	Status          model.StatusAgendamento `json:"status"`
}

func ToAgendamentoResponse(m model.AgendamentoModel) AgendamentoResponse {
	horarios := make([]grade.Intervalo, 0, len(m.Horarios))
	for _, h := range m.Horarios {
		horarios = append(horarios, grade.Intervalo{Inicio: h.HoraInicio, Fim: h.HoraFim})
	}
	return AgendamentoResponse{
		ID:              m.ID,
		FkUsuarioID:     m.FkUsuarioID,
		FkSalasID:       m.FkSalasID,
		DataAgendamento: m.DataAgendamento,
		Horarios:        horarios,
		Proposito:       m.Proposito,
		Status:          m.Status,
	}
}
