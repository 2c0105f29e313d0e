package model

import (
	"time"
)

/* =======================================================
   Status do agendamento (enum em texto, como no schema)
   ======================================================= */

type StatusAgendamento string

const (
	StatusPendente   StatusAgendamento = "PENDENTE"
	StatusConfirmado StatusAgendamento = "CONFIRMADO"
	StatusCancelado  StatusAgendamento = "CANCELADO"
)

/* =======================================================
   AgendamentoModel — cabeçalho da reserva (tabela agendamentos)
   ======================================================= */

// Um agendamento cobre um ou mais intervalos da mesma sala/data como unidade
// atômica: ou todos os intervalos entram, ou nenhum. Os intervalos ficam em
// agendamento_horarios. Depois de confirmado o agendamento é imutável;
// cancelar = deletar.
//
// fk_organizador_id/status existem no schema para um fluxo de pré-aprovação
// que o produto nunca ligou; o fluxo de reserva grava direto CONFIRMADO.
type AgendamentoModel struct {
	ID              uint              `json:"id" gorm:"primaryKey;column:id"`
	FkUsuarioID     uint              `json:"fk_usuario_id" gorm:"not null;index;column:fk_usuario_id"`
	FkSalasID       uint              `json:"fk_salas_id" gorm:"not null;index;column:fk_salas_id"`
	DataAgendamento string            `json:"data_agendamento" gorm:"type:date;not null;column:data_agendamento"`
	Proposito       string            `json:"proposito" gorm:"type:text;column:proposito"`
	Status          StatusAgendamento `json:"status" gorm:"type:varchar(20);not null;default:'CONFIRMADO';column:status"`
	FkOrganizadorID *uint             `json:"fk_organizador_id,omitempty" gorm:"column:fk_organizador_id"`
	CreatedAt       time.Time         `json:"created_at" gorm:"autoCreateTime;column:created_at"`

	Horarios []AgendamentoHorarioModel `json:"horarios" gorm:"foreignKey:FkAgendamentoID"`
}

func (AgendamentoModel) TableName() string {
	return "agendamentos"
}

/* =======================================================
   AgendamentoHorarioModel — um intervalo reservado
   ======================================================= */

// Uma linha por intervalo reservado, com sala e data desnormalizadas para o
// índice único (fk_salas_id, data_agendamento, hora_inicio, hora_fim).
// É esse índice que garante no máximo uma reserva por intervalo exato de uma
// sala/data: a violação de chave duplicada no commit é o erro de conflito,
// sem janela entre checagem e insert.
type AgendamentoHorarioModel struct {
	ID              uint   `json:"id" gorm:"primaryKey;column:id"`
	FkAgendamentoID uint   `json:"fk_agendamento_id" gorm:"not null;index;column:fk_agendamento_id"`
	FkSalasID       uint   `json:"fk_salas_id" gorm:"not null;uniqueIndex:uq_agendamento_sala_data_intervalo;column:fk_salas_id"`
	DataAgendamento string `json:"data_agendamento" gorm:"type:date;not null;uniqueIndex:uq_agendamento_sala_data_intervalo;column:data_agendamento"`
	HoraInicio      string `json:"hora_inicio" gorm:"type:varchar(8);not null;uniqueIndex:uq_agendamento_sala_data_intervalo;column:hora_inicio"`
	HoraFim         string `json:"hora_fim" gorm:"type:varchar(8);not null;uniqueIndex:uq_agendamento_sala_data_intervalo;column:hora_fim"`
}

func (AgendamentoHorarioModel) TableName() string {
	return "agendamento_horarios"
}
