package model

import (
	"time"

	"gorm.io/gorm"
)

// UsuarioModel representa a tabela usuarios.
type UsuarioModel struct {
	ID        uint           `json:"id" gorm:"primaryKey;column:id"`
	Nome      string         `json:"nome" gorm:"size:100;not null;column:nome"`
	Email     string         `json:"email" gorm:"size:255;unique;not null;column:email"`
	Senha     string         `json:"-" gorm:"not null;column:senha"`
	Ativo     bool           `json:"ativo" gorm:"not null;default:true;column:ativo"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime;column:updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index;column:deleted_at"`
}

func (UsuarioModel) TableName() string {
	return "usuarios"
}
