package model

import (
	"time"
)

// InstituicaoModel representa a tabela instituicoes. O organizador é o
// usuário dono: só ele administra salas, horários e vínculos.
type InstituicaoModel struct {
	ID              uint      `json:"id" gorm:"primaryKey;column:id"`
	FkOrganizadorID uint      `json:"fk_organizador_id" gorm:"not null;index;column:fk_organizador_id"`
	Nome            string    `json:"nome" gorm:"size:100;not null;column:nome"`
	Descricao       string    `json:"descricao" gorm:"type:text;column:descricao"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime;column:updated_at"`
}

func (InstituicaoModel) TableName() string {
	return "instituicoes"
}
