package grade

import (
	"testing"

	"gorm.io/datatypes"
)

// grade com segunda 08-10/10-12 e sábado 14-16; demais dias fechados
func gradeExemplo() GradeSemanal {
	return GradeSemanal{
		{},
		{{Inicio: "08:00:00", Fim: "10:00:00"}, {Inicio: "10:00:00", Fim: "12:00:00"}},
		{}, {}, {}, {},
		{{Inicio: "14:00:00", Fim: "16:00:00"}},
	}
}

func TestValidar(t *testing.T) {
	casos := []struct {
		nome   string
		g      GradeSemanal
		valida bool
	}{
		{"grade exemplo", gradeExemplo(), true},
		{"todos os dias fechados", GradeSemanal{{}, {}, {}, {}, {}, {}, {}}, true},
		{"menos de 7 dias", GradeSemanal{{}, {}, {}}, false},
		{"mais de 7 dias", GradeSemanal{{}, {}, {}, {}, {}, {}, {}, {}}, false},
		{
			"hora malformada",
			GradeSemanal{{{Inicio: "8h", Fim: "10:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
		{
			"fim igual ao inicio",
			GradeSemanal{{{Inicio: "08:00:00", Fim: "08:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
		{
			"fim antes do inicio",
			GradeSemanal{{{Inicio: "10:00:00", Fim: "08:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
		{
			"intervalos sobrepostos",
			GradeSemanal{{{Inicio: "08:00:00", Fim: "10:00:00"}, {Inicio: "09:00:00", Fim: "11:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
		{
			"intervalos fora de ordem",
			GradeSemanal{{{Inicio: "10:00:00", Fim: "12:00:00"}, {Inicio: "08:00:00", Fim: "09:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
		{
			"intervalos adjacentes sao validos",
			GradeSemanal{{{Inicio: "08:00:00", Fim: "10:00:00"}, {Inicio: "10:00:00", Fim: "12:00:00"}}, {}, {}, {}, {}, {}, {}},
			true,
		},
		{
			"intervalo de 30 segundos e valido",
			GradeSemanal{{{Inicio: "08:00:00", Fim: "08:00:30"}}, {}, {}, {}, {}, {}, {}},
			true,
		},
		{
			"sobreposicao de 30 segundos e rejeitada",
			GradeSemanal{{{Inicio: "08:00:00", Fim: "10:00:30"}, {Inicio: "10:00:00", Fim: "12:00:00"}}, {}, {}, {}, {}, {}, {}},
			false,
		},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			err := c.g.Validar()
			if c.valida && err != nil {
				t.Fatalf("Validar: erro inesperado %v", err)
			}
			if !c.valida && err == nil {
				t.Fatal("Validar: esperava erro")
			}
		})
	}
}

func TestParse(t *testing.T) {
	g := gradeExemplo()
	raw, err := g.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	parsed, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(parsed) != DiasSemana {
		t.Fatalf("Parse: %d dias, esperado %d", len(parsed), DiasSemana)
	}
	if len(parsed[1]) != 2 || !parsed[1][0].Igual(g[1][0]) {
		t.Errorf("Parse: segunda-feira não bate: %+v", parsed[1])
	}

	if _, err := Parse(nil); err == nil {
		t.Error("Parse(nil): esperava erro")
	}
	if _, err := Parse(datatypes.JSON(`{"nao":"lista"}`)); err == nil {
		t.Error("Parse(objeto): esperava erro")
	}
	if _, err := Parse(datatypes.JSON(`[[],[]]`)); err == nil {
		t.Error("Parse(2 dias): esperava erro")
	}
}

func TestDia(t *testing.T) {
	g := gradeExemplo()
	if got := g.Dia(1); len(got) != 2 {
		t.Errorf("Dia(1): %d intervalos, esperado 2", len(got))
	}
	if got := g.Dia(0); len(got) != 0 {
		t.Errorf("Dia(0): esperado dia fechado, veio %+v", got)
	}
	if got := g.Dia(7); got != nil {
		t.Errorf("Dia(7): esperado nil fora do range, veio %+v", got)
	}
	var nula GradeSemanal
	if got := nula.Dia(1); got != nil {
		t.Errorf("Dia em grade nula: esperado nil, veio %+v", got)
	}
}

func TestClonar(t *testing.T) {
	g := gradeExemplo()
	clone := g.Clonar()

	clone[1][0].Inicio = "07:00:00"
	if g[1][0].Inicio != "08:00:00" {
		t.Error("Clonar: alterar o clone não pode afetar o original")
	}

	var nula GradeSemanal
	if nula.Clonar() != nil {
		t.Error("Clonar de grade nula deveria ser nil")
	}
}

func TestIgual(t *testing.T) {
	a := Intervalo{Inicio: "08:00:00", Fim: "10:00:00"}
	if !a.Igual(Intervalo{Inicio: "08:00:00", Fim: "10:00:00"}) {
		t.Error("intervalos idênticos deveriam ser iguais")
	}
	// mesma janela parcial não conta: igualdade é exata, não sobreposição
	if a.Igual(Intervalo{Inicio: "08:00:00", Fim: "09:00:00"}) {
		t.Error("intervalo contido não é igual")
	}
	if a.Igual(Intervalo{Inicio: "09:00:00", Fim: "10:00:00"}) {
		t.Error("intervalo com fim igual mas inicio diferente não é igual")
	}
}
