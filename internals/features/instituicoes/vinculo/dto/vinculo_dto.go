package dto

import (
	"reservasalas_backend/internals/features/instituicoes/vinculo/model"
)

// SolicitarVinculoRequest — o usuário autenticado pede para entrar.
type SolicitarVinculoRequest struct {
	FkInstituicaoID uint `json:"fk_instituicao_id" validate:"required"`
}

// CadastrarVinculoRequest — o organizador adiciona um usuário direto,
// já aceito.
type CadastrarVinculoRequest struct {
	FkInstituicaoID uint `json:"fk_instituicao_id" validate:"required"`
	FkUsuarioID     uint `json:"fk_usuario_id" validate:"required"`
}

type VinculoResponse struct {
	ID              uint `json:"id"`
	FkInstituicaoID uint `json:"fk_instituicao_id"`
	FkUsuarioID     uint `json:"fk_usuario_id"`
	Aceito          bool `json:"aceito"`
	Bloqueado       bool `json:"bloqueado"`
}

func ToVinculoResponse(m model.VinculoModel) VinculoResponse {
	return VinculoResponse{
		ID:              m.ID,
		FkInstituicaoID: m.FkInstituicaoID,
		FkUsuarioID:     m.FkUsuarioID,
		Aceito:          m.Aceito,
		Bloqueado:       m.Bloqueado,
	}
}
