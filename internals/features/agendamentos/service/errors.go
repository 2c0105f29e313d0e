package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Erros tipados do motor de disponibilidade e do validador de reserva.
// A controller traduz cada um para o status HTTP do envelope.
var (
	ErrDataInvalida             = errors.New("data_agendamento inválida: esperado YYYY-MM-DD")
	ErrHorariosVazios           = errors.New("horarios deve conter pelo menos um intervalo")
	ErrIntervaloInvalido        = errors.New("intervalo inválido: hora no formato HH:MM:SS e fim maior que inicio")
	ErrIntervaloDuplicado       = errors.New("horarios contém intervalos repetidos")
	ErrSalaNaoEncontrada        = errors.New("sala não encontrada")
	ErrForaDaGrade              = errors.New("intervalo não corresponde a nenhum slot da grade da sala")
	ErrConflitoAgendamento      = errors.New("intervalo já reservado para esta sala e data")
	ErrSemVinculo               = errors.New("usuário sem vínculo aceito com a instituição da sala")
	ErrAgendamentoNaoEncontrado = errors.New("agendamento não encontrado")
	ErrSemPermissao             = errors.New("usuário sem permissão sobre este agendamento")
)

// isUniqueViolation reconhece violação de chave única sem acoplar no driver:
// primeiro o erro traduzido do GORM, depois o texto do Postgres.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
