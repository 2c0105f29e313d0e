package service

import (
	"errors"

	"gorm.io/gorm"

	agModel "reservasalas_backend/internals/features/agendamentos/model"
	"reservasalas_backend/internals/features/horarios/grade"
	vinculoModel "reservasalas_backend/internals/features/instituicoes/vinculo/model"
	salaModel "reservasalas_backend/internals/features/salas/model"
	"reservasalas_backend/internals/helpers/dbtime"
)

// ValidarIntervalos faz a checagem estrutural dos intervalos pedidos:
// lista não vazia, horas bem formadas, fim > inicio e sem repetição.
func ValidarIntervalos(horarios []grade.Intervalo) error {
	if len(horarios) == 0 {
		return ErrHorariosVazios
	}
	vistos := make(map[grade.Intervalo]struct{}, len(horarios))
	for _, iv := range horarios {
		ini, err := dbtime.HoraParaSegundos(iv.Inicio)
		if err != nil {
			return ErrIntervaloInvalido
		}
		fim, err := dbtime.HoraParaSegundos(iv.Fim)
		if err != nil {
			return ErrIntervaloInvalido
		}
		if fim <= ini {
			return ErrIntervaloInvalido
		}
		if _, ok := vistos[iv]; ok {
			return ErrIntervaloDuplicado
		}
		vistos[iv] = struct{}{}
	}
	return nil
}

// ConferirGrade exige que cada intervalo pedido seja exatamente igual a
// algum slot da grade do dia — mesma política de igualdade exata da
// ocupação; reserva parcial de slot é rejeitada.
func ConferirGrade(slots []grade.Intervalo, horarios []grade.Intervalo) error {
	for _, iv := range horarios {
		achou := false
		for _, slot := range slots {
			if slot.Igual(iv) {
				achou = true
				break
			}
		}
		if !achou {
			return ErrForaDaGrade
		}
	}
	return nil
}

func temVinculoAtivo(tx *gorm.DB, instituicaoID, usuarioID uint) (bool, error) {
	var v vinculoModel.VinculoModel
	err := tx.
		Where("fk_instituicao_id = ? AND fk_usuario_id = ? AND aceito = true AND bloqueado = false",
			instituicaoID, usuarioID).
		First(&v).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Agendar valida e grava uma reserva como unidade atômica.
//
// A ocupação é reconferida dentro da mesma transação do insert, e o índice
// único de agendamento_horarios é quem decide corridas: se duas requisições
// disputam o mesmo intervalo, uma comita e a outra recebe violação de chave
// duplicada, traduzida aqui para ErrConflitoAgendamento. Nada de
// checa-depois-insere com janela aberta.
func Agendar(db *gorm.DB, usuarioID, salaID uint, data string, horarios []grade.Intervalo, proposito string) (*agModel.AgendamentoModel, error) {
	if _, err := dbtime.ValidarDataISO(data); err != nil {
		return nil, ErrDataInvalida
	}
	if err := ValidarIntervalos(horarios); err != nil {
		return nil, err
	}

	var criado *agModel.AgendamentoModel
	err := db.Transaction(func(tx *gorm.DB) error {
		var sala salaModel.SalaModel
		if err := tx.First(&sala, salaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSalaNaoEncontrada
			}
			return err
		}

		ok, err := temVinculoAtivo(tx, sala.FkInstituicaoID, usuarioID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrSemVinculo
		}

		slots, err := slotsDoDia(&sala, data)
		if err != nil {
			return err
		}
		if err := ConferirGrade(slots, horarios); err != nil {
			return err
		}

		// Reconfere a ocupação no momento do commit, não num snapshot velho
		// de uma consulta de disponibilidade anterior.
		ocupacoes, err := carregarOcupacoes(tx, salaID, data)
		if err != nil {
			return err
		}
		for _, iv := range horarios {
			for _, oc := range ocupacoes {
				if iv.Igual(oc.Intervalo) {
					return ErrConflitoAgendamento
				}
			}
		}

		ag := agModel.AgendamentoModel{
			FkUsuarioID:     usuarioID,
			FkSalasID:       salaID,
			DataAgendamento: data,
			Proposito:       proposito,
			Status:          agModel.StatusConfirmado,
		}
		if err := tx.Create(&ag).Error; err != nil {
			return err
		}

		linhas := make([]agModel.AgendamentoHorarioModel, 0, len(horarios))
		for _, iv := range horarios {
			linhas = append(linhas, agModel.AgendamentoHorarioModel{
				FkAgendamentoID: ag.ID,
				FkSalasID:       salaID,
				DataAgendamento: data,
				HoraInicio:      iv.Inicio,
				HoraFim:         iv.Fim,
			})
		}
		if err := tx.Create(&linhas).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflitoAgendamento
			}
			return err
		}

		ag.Horarios = linhas
		criado = &ag
		return nil
	})
	if err != nil {
		return nil, err
	}
	return criado, nil
}

// Deletar remove um agendamento (cancelar = deletar). Só o dono da reserva
// ou o organizador da instituição da sala podem remover.
func Deletar(db *gorm.DB, agendamentoID, solicitanteID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var ag agModel.AgendamentoModel
		if err := tx.First(&ag, agendamentoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAgendamentoNaoEncontrado
			}
			return err
		}

		if ag.FkUsuarioID != solicitanteID {
			var organizadorID uint
			err := tx.Model(&salaModel.SalaModel{}).
				Select("instituicoes.fk_organizador_id").
				Joins("JOIN instituicoes ON instituicoes.id = salas.fk_instituicao_id").
				Where("salas.id = ?", ag.FkSalasID).
				Scan(&organizadorID).Error
			if err != nil {
				return err
			}
			if organizadorID != solicitanteID {
				return ErrSemPermissao
			}
		}

		if err := tx.Where("fk_agendamento_id = ?", ag.ID).
			Delete(&agModel.AgendamentoHorarioModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ag).Error
	})
}
