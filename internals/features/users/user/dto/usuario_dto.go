package dto

import (
	"strings"

	"reservasalas_backend/internals/features/users/user/model"
)

type CriarUsuarioRequest struct {
	Nome  string `json:"nome" validate:"required,min=3,max=100"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=8"`
}

func (r *CriarUsuarioRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AtualizarUsuarioRequest struct {
	Nome  *string `json:"nome,omitempty" validate:"omitempty,min=3,max=100"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

func (r *AtualizarUsuarioRequest) Normalize() {
	if r.Nome != nil {
		n := strings.TrimSpace(*r.Nome)
		r.Nome = &n
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &e
	}
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// UsuarioResponse nunca expõe o hash da senha.
type UsuarioResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Ativo bool   `json:"ativo"`
}

func ToUsuarioResponse(m model.UsuarioModel) UsuarioResponse {
	return UsuarioResponse{
		ID:    m.ID,
		Nome:  m.Nome,
		Email: m.Email,
		Ativo: m.Ativo,
	}
}
