package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reservasalas_backend/internals/features/agendamentos/dto"
	agModel "reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/horarios/grade"
	salaModel "reservasalas_backend/internals/features/salas/model"
	"reservasalas_backend/internals/helpers/dbtime"
)

// Ocupacao é um intervalo já reservado de uma sala/data e quem reservou.
type Ocupacao struct {
	Intervalo grade.Intervalo
	UsuarioID uint
}

// MontarDisponibilidade cruza os slots da grade do dia com as ocupações:
// para cada slot, na ordem da grade, procura uma ocupação de limites
// exatamente iguais. Achou → disponivel=false com o usuário; não achou →
// disponivel=true. A saída preserva a ordem da grade, então é determinística
// para a mesma entrada.
//
// A ocupação é por igualdade exata de intervalo, não por sobreposição: os
// slots são unidades discretas pré-definidas e reserva parcial está fora do
// modelo.
func MontarDisponibilidade(slots []grade.Intervalo, ocupacoes []Ocupacao) []dto.SlotDisponibilidade {
	out := make([]dto.SlotDisponibilidade, 0, len(slots))
	for _, slot := range slots {
		status := dto.SlotDisponibilidade{
			Inicio:     slot.Inicio,
			Fim:        slot.Fim,
			Disponivel: true,
		}
		for _, oc := range ocupacoes {
			if slot.Igual(oc.Intervalo) {
				usuarioID := oc.UsuarioID
				status.Disponivel = false
				status.UsuarioID = &usuarioID
				break
			}
		}
		out = append(out, status)
	}
	return out
}

type ocupacaoRow struct {
	HoraInicio  string
	HoraFim     string
	FkUsuarioID uint
}

func carregarOcupacoes(tx *gorm.DB, salaID uint, data string) ([]Ocupacao, error) {
	var rows []ocupacaoRow
	err := tx.Model(&agModel.AgendamentoHorarioModel{}).
		Select("agendamento_horarios.hora_inicio, agendamento_horarios.hora_fim, agendamentos.fk_usuario_id").
		Joins("JOIN agendamentos ON agendamentos.id = agendamento_horarios.fk_agendamento_id").
		Where("agendamento_horarios.fk_salas_id = ? AND agendamento_horarios.data_agendamento = ?", salaID, data).
		Order("agendamento_horarios.hora_inicio ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ocupacoes := make([]Ocupacao, 0, len(rows))
	for _, r := range rows {
		ocupacoes = append(ocupacoes, Ocupacao{
			Intervalo: grade.Intervalo{Inicio: r.HoraInicio, Fim: r.HoraFim},
			UsuarioID: r.FkUsuarioID,
		})
	}
	return ocupacoes, nil
}

func slotsDoDia(sala *salaModel.SalaModel, data string) ([]grade.Intervalo, error) {
	dt, err := dbtime.ValidarDataISO(data)
	if err != nil {
		return nil, ErrDataInvalida
	}
	if len(sala.HorarioFuncionamento) == 0 {
		// sala sem grade configurada = fechada, não é erro
		return nil, nil
	}
	g, err := grade.Parse(sala.HorarioFuncionamento)
	if err != nil {
		return nil, fmt.Errorf("grade da sala %d corrompida: %w", sala.ID, err)
	}
	return g.Dia(dbtime.IndiceDiaSemana(dt)), nil
}

// VerificarDisponibilidade devolve, na ordem da grade, os slots da sala na
// data com a ocupação anotada. Grade e reservas são lidas dentro de uma
// mesma transação para não misturar dois instantes diferentes do banco.
func VerificarDisponibilidade(db *gorm.DB, salaID uint, data string) ([]dto.SlotDisponibilidade, error) {
	if _, err := dbtime.ValidarDataISO(data); err != nil {
		return nil, ErrDataInvalida
	}

	var out []dto.SlotDisponibilidade
	err := db.Transaction(func(tx *gorm.DB) error {
		var sala salaModel.SalaModel
		if err := tx.First(&sala, salaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSalaNaoEncontrada
			}
			return err
		}

		slots, err := slotsDoDia(&sala, data)
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			out = []dto.SlotDisponibilidade{}
			return nil
		}

		ocupacoes, err := carregarOcupacoes(tx, salaID, data)
		if err != nil {
			return err
		}

		out = MontarDisponibilidade(slots, ocupacoes)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
