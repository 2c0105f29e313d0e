package model

import (
	"time"

	"gorm.io/datatypes"
)

// HorarioModel é o esquema de horário nomeado e reutilizável de uma
// instituição (tabela horarios): {descricao, horario}, onde horario é a
// grade semanal em JSONB. Copiar para uma sala é cópia de valor.
type HorarioModel struct {
	ID              uint           `json:"id" gorm:"primaryKey;column:id"`
	FkInstituicaoID uint           `json:"fk_instituicao_id" gorm:"not null;index;column:fk_instituicao_id"`
	Descricao       string         `json:"descricao" gorm:"size:255;not null;column:descricao"`
	Horario         datatypes.JSON `json:"horario" gorm:"type:jsonb;not null;column:horario"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime;column:updated_at"`
}

func (HorarioModel) TableName() string {
	return "horarios"
}
