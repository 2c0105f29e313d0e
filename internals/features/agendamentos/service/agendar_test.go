package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"reservasalas_backend/internals/features/horarios/grade"
)

func TestValidarIntervalos(t *testing.T) {
	casos := []struct {
		nome     string
		horarios []grade.Intervalo
		want     error
	}{
		{
			"um intervalo valido",
			[]grade.Intervalo{{Inicio: "08:00:00", Fim: "10:00:00"}},
			nil,
		},
		{
			"varios intervalos validos",
			[]grade.Intervalo{
				{Inicio: "08:00:00", Fim: "10:00:00"},
				{Inicio: "10:00:00", Fim: "12:00:00"},
			},
			nil,
		},
		{
			"intervalo de 30 segundos e valido",
			[]grade.Intervalo{{Inicio: "08:00:00", Fim: "08:00:30"}},
			nil,
		},
		{"lista vazia", nil, ErrHorariosVazios},
		{
			"hora malformada",
			[]grade.Intervalo{{Inicio: "8h", Fim: "10:00:00"}},
			ErrIntervaloInvalido,
		},
		{
			"fim igual ao inicio",
			[]grade.Intervalo{{Inicio: "08:00:00", Fim: "08:00:00"}},
			ErrIntervaloInvalido,
		},
		{
			"fim antes do inicio",
			[]grade.Intervalo{{Inicio: "10:00:00", Fim: "08:00:00"}},
			ErrIntervaloInvalido,
		},
		{
			"fim 30 segundos antes do inicio",
			[]grade.Intervalo{{Inicio: "08:00:30", Fim: "08:00:00"}},
			ErrIntervaloInvalido,
		},
		{
			"intervalo repetido",
			[]grade.Intervalo{
				{Inicio: "08:00:00", Fim: "10:00:00"},
				{Inicio: "08:00:00", Fim: "10:00:00"},
			},
			ErrIntervaloDuplicado,
		},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			err := ValidarIntervalos(c.horarios)
			if !errors.Is(err, c.want) && err != c.want {
				t.Fatalf("ValidarIntervalos = %v, esperado %v", err, c.want)
			}
		})
	}
}

func TestConferirGrade(t *testing.T) {
	slots := []grade.Intervalo{
		{Inicio: "08:00:00", Fim: "10:00:00"},
		{Inicio: "10:00:00", Fim: "12:00:00"},
	}

	if err := ConferirGrade(slots, []grade.Intervalo{slots[0]}); err != nil {
		t.Errorf("slot exato da grade deveria passar: %v", err)
	}
	if err := ConferirGrade(slots, slots); err != nil {
		t.Errorf("todos os slots da grade deveriam passar: %v", err)
	}

	// pedido dentro do slot mas com limites diferentes é rejeitado
	err := ConferirGrade(slots, []grade.Intervalo{{Inicio: "08:00:00", Fim: "09:00:00"}})
	if !errors.Is(err, ErrForaDaGrade) {
		t.Errorf("reserva parcial de slot deveria dar ErrForaDaGrade, veio %v", err)
	}

	err = ConferirGrade(slots, []grade.Intervalo{{Inicio: "14:00:00", Fim: "16:00:00"}})
	if !errors.Is(err, ErrForaDaGrade) {
		t.Errorf("intervalo fora da grade deveria dar ErrForaDaGrade, veio %v", err)
	}

	// dia fechado: nenhum pedido passa
	err = ConferirGrade(nil, []grade.Intervalo{slots[0]})
	if !errors.Is(err, ErrForaDaGrade) {
		t.Errorf("dia fechado deveria dar ErrForaDaGrade, veio %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	casos := []struct {
		nome string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"mensagem do postgres", errors.New(`duplicate key value violates unique constraint "uq_agendamento_sala_data_intervalo"`), true},
		{"unique constraint generica", errors.New("UNIQUE constraint failed"), true},
		{"erro qualquer", errors.New("connection refused"), false},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := isUniqueViolation(c.err); got != c.want {
				t.Errorf("isUniqueViolation(%v) = %v, esperado %v", c.err, got, c.want)
			}
		})
	}
}
