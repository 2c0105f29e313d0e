package model

import (
	"time"

	"gorm.io/datatypes"
)

// SalaModel representa a tabela salas. HorarioFuncionamento guarda a cópia
// própria da grade semanal (JSONB); null significa sala ainda sem grade —
// fechada todos os dias até alguém copiar um horário para ela.
type SalaModel struct {
	ID                   uint           `json:"id" gorm:"primaryKey;column:id"`
	FkInstituicaoID      uint           `json:"fk_instituicao_id" gorm:"not null;index;column:fk_instituicao_id"`
	Nome                 string         `json:"nome" gorm:"size:100;not null;column:nome"`
	Descricao            string         `json:"descricao" gorm:"type:text;column:descricao"`
	HorarioFuncionamento datatypes.JSON `json:"horario_funcionamento,omitempty" gorm:"type:jsonb;column:horario_funcionamento"`
	CreatedAt            time.Time      `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt            time.Time      `json:"updated_at" gorm:"autoUpdateTime;column:updated_at"`
}

func (SalaModel) TableName() string {
	return "salas"
}
