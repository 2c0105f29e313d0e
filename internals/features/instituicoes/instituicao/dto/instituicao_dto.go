package dto

import (
	"strings"

	"reservasalas_backend/internals/features/instituicoes/instituicao/model"
)

type CriarInstituicaoRequest struct {
	Nome      string `json:"nome" validate:"required,min=3,max=100"`
	Descricao string `json:"descricao" validate:"omitempty,max=500"`
}

func (r *CriarInstituicaoRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Descricao = strings.TrimSpace(r.Descricao)
}

type AtualizarInstituicaoRequest struct {
	Nome      *string `json:"nome,omitempty" validate:"omitempty,min=3,max=100"`
	Descricao *string `json:"descricao,omitempty" validate:"omitempty,max=500"`
}

func (r *AtualizarInstituicaoRequest) Normalize() {
	if r.Nome != nil {
		n := strings.TrimSpace(*r.Nome)
		r.Nome = &n
	}
	if r.Descricao != nil {
		d := strings.TrimSpace(*r.Descricao)
		r.Descricao = &d
	}
}

type InstituicaoResponse struct {
	ID              uint   `json:"id"`
	FkOrganizadorID uint   `json:"fk_organizador_id"`
	Nome            string `json:"nome"`
	Descricao       string `json:"descricao"`
}

func ToInstituicaoResponse(m model.InstituicaoModel) InstituicaoResponse {
	return InstituicaoResponse{
		ID:              m.ID,
		FkOrganizadorID: m.FkOrganizadorID,
		Nome:            m.Nome,
		Descricao:       m.Descricao,
	}
}
