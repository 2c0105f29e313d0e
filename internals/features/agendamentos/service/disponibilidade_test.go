package service

import (
	"reflect"
	"testing"

	"reservasalas_backend/internals/features/horarios/grade"
)

func slotsSegunda() []grade.Intervalo {
	return []grade.Intervalo{
		{Inicio: "08:00:00", Fim: "10:00:00"},
		{Inicio: "10:00:00", Fim: "12:00:00"},
		{Inicio: "14:00:00", Fim: "16:00:00"},
	}
}

func TestMontarDisponibilidadeTudoLivre(t *testing.T) {
	out := MontarDisponibilidade(slotsSegunda(), nil)
	if len(out) != 3 {
		t.Fatalf("esperava 3 slots, veio %d", len(out))
	}
	for i, s := range out {
		if !s.Disponivel {
			t.Errorf("slot %d deveria estar disponível", i)
		}
		if s.UsuarioID != nil {
			t.Errorf("slot %d livre não deve ter usuário anotado", i)
		}
	}
}

func TestMontarDisponibilidadeComOcupacao(t *testing.T) {
	ocupacoes := []Ocupacao{
		{Intervalo: grade.Intervalo{Inicio: "10:00:00", Fim: "12:00:00"}, UsuarioID: 42},
	}
	out := MontarDisponibilidade(slotsSegunda(), ocupacoes)

	if out[0].Disponivel != true || out[2].Disponivel != true {
		t.Error("slots não reservados deveriam seguir livres")
	}
	if out[1].Disponivel {
		t.Fatal("slot 10-12 deveria estar ocupado")
	}
	if out[1].UsuarioID == nil || *out[1].UsuarioID != 42 {
		t.Errorf("slot ocupado deveria anotar usuário 42, veio %v", out[1].UsuarioID)
	}
}

// Ocupação que sobrepõe mas não coincide com um slot não o marca: a política
// é igualdade exata de limites.
func TestMontarDisponibilidadeSobreposicaoNaoConta(t *testing.T) {
	ocupacoes := []Ocupacao{
		{Intervalo: grade.Intervalo{Inicio: "08:00:00", Fim: "09:00:00"}, UsuarioID: 7},
		{Intervalo: grade.Intervalo{Inicio: "09:00:00", Fim: "11:00:00"}, UsuarioID: 7},
	}
	out := MontarDisponibilidade(slotsSegunda(), ocupacoes)
	for i, s := range out {
		if !s.Disponivel {
			t.Errorf("slot %d deveria seguir livre: ocupações não coincidem com nenhum slot", i)
		}
	}
}

func TestMontarDisponibilidadePreservaOrdem(t *testing.T) {
	slots := slotsSegunda()
	out := MontarDisponibilidade(slots, []Ocupacao{
		{Intervalo: slots[2], UsuarioID: 1},
		{Intervalo: slots[0], UsuarioID: 2},
	})
	for i, s := range out {
		if s.Inicio != slots[i].Inicio || s.Fim != slots[i].Fim {
			t.Fatalf("posição %d fora da ordem da grade: %+v", i, s)
		}
	}
}

func TestMontarDisponibilidadeDeterministica(t *testing.T) {
	slots := slotsSegunda()
	ocupacoes := []Ocupacao{{Intervalo: slots[1], UsuarioID: 9}}
	a := MontarDisponibilidade(slots, ocupacoes)
	b := MontarDisponibilidade(slots, ocupacoes)
	if !reflect.DeepEqual(a, b) {
		t.Error("mesma entrada deveria produzir a mesma saída")
	}
}

func TestMontarDisponibilidadeSemSlots(t *testing.T) {
	out := MontarDisponibilidade(nil, []Ocupacao{
		{Intervalo: grade.Intervalo{Inicio: "08:00:00", Fim: "10:00:00"}, UsuarioID: 1},
	})
	if len(out) != 0 {
		t.Errorf("dia fechado deveria produzir lista vazia, veio %d slots", len(out))
	}
}

// Cada slot da saída está em exatamente um estado: livre sem usuário ou
// ocupado com usuário.
func TestMontarDisponibilidadeParticao(t *testing.T) {
	slots := slotsSegunda()
	out := MontarDisponibilidade(slots, []Ocupacao{
		{Intervalo: slots[0], UsuarioID: 3},
		{Intervalo: slots[1], UsuarioID: 4},
	})
	if len(out) != len(slots) {
		t.Fatalf("saída deve ter um item por slot da grade")
	}
	for i, s := range out {
		if s.Disponivel && s.UsuarioID != nil {
			t.Errorf("slot %d livre com usuário anotado", i)
		}
		if !s.Disponivel && s.UsuarioID == nil {
			t.Errorf("slot %d ocupado sem usuário anotado", i)
		}
	}
}
