package model

import (
	"time"
)

// VinculoModel é o vínculo instituição↔usuário (tabela instituicao_usuario).
// aceito=false é solicitação pendente; bloqueado trava o acesso sem apagar o
// histórico. O índice único fecha a corrida de duplo-cadastro: o banco é
// quem garante no máximo um vínculo por par.
type VinculoModel struct {
	ID              uint      `json:"id" gorm:"primaryKey;column:id"`
	FkInstituicaoID uint      `json:"fk_instituicao_id" gorm:"not null;uniqueIndex:uq_vinculo_instituicao_usuario;column:fk_instituicao_id"`
	FkUsuarioID     uint      `json:"fk_usuario_id" gorm:"not null;uniqueIndex:uq_vinculo_instituicao_usuario;column:fk_usuario_id"`
	Aceito          bool      `json:"aceito" gorm:"not null;default:false;column:aceito"`
	Bloqueado       bool      `json:"bloqueado" gorm:"not null;default:false;column:bloqueado"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime;column:updated_at"`
}

func (VinculoModel) TableName() string {
	return "instituicao_usuario"
}
