package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist guarda tokens revogados no logout até o exp vencer.
// Substitui o cache de sessões em memória da versão antiga: o estado fica
// no banco e um scheduler varre os vencidos.
type TokenBlacklist struct {
	ID         uint           `json:"id" gorm:"primaryKey;column:id"`
	Token      string         `json:"token" gorm:"type:text;not null;unique;column:token"`
	ExpiradoEm time.Time      `json:"expirado_em" gorm:"column:expirado_em"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime;column:created_at"`
	DeletedAt  gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index;column:deleted_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
